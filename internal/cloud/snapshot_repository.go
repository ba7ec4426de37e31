package cloud

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/om607397-wq/namaa/internal/models"
)

// snapshotCollection is the logical collection holding one backup document
// per Firebase identity; the document id is the user's uid.
const snapshotCollection = "users_data"

// ErrNoSnapshot is returned by Fetch when the user has never uploaded.
// It is a terminal state for callers, not a failure.
var ErrNoSnapshot = errors.New("no snapshot exists for user")

// ErrPermissionDenied is returned when the remote store rejects the access.
// Callers surface it distinctly so the UI can show actionable guidance.
var ErrPermissionDenied = errors.New("snapshot access denied")

// SnapshotRepository stores and retrieves whole-namespace backups.
type SnapshotRepository interface {
	// Fetch returns the snapshot for uid, ErrNoSnapshot when none exists, or
	// ErrPermissionDenied / a transport error otherwise.
	Fetch(ctx context.Context, uid string) (*models.Snapshot, error)
	// Put merge-writes the snapshot fields onto the user's document,
	// creating it when absent. Fields outside the snapshot survive.
	Put(ctx context.Context, uid string, snap *models.Snapshot) error
}

type firestoreSnapshotRepository struct {
	client *firestore.Client
}

// NewFirestoreSnapshotRepository creates a SnapshotRepository over Firestore.
func NewFirestoreSnapshotRepository(client *firestore.Client) SnapshotRepository {
	return &firestoreSnapshotRepository{client: client}
}

func (r *firestoreSnapshotRepository) Fetch(ctx context.Context, uid string) (*models.Snapshot, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty")
	}
	docSnap, err := r.client.Collection(snapshotCollection).Doc(uid).Get(ctx)
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			return nil, ErrNoSnapshot
		case codes.PermissionDenied:
			return nil, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		default:
			return nil, fmt.Errorf("fetch snapshot for %q: %w", uid, err)
		}
	}

	var snap models.Snapshot
	if err := docSnap.DataTo(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot for %q: %w", uid, err)
	}
	return &snap, nil
}

func (r *firestoreSnapshotRepository) Put(ctx context.Context, uid string, snap *models.Snapshot) error {
	if uid == "" {
		return errors.New("uid cannot be empty")
	}
	// MergeAll requires map data; only these four fields are touched.
	_, err := r.client.Collection(snapshotCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"updatedAt":   snap.UpdatedAt,
		"profileName": snap.ProfileName,
		"email":       snap.Email,
		"data":        snap.Data,
	}, firestore.MergeAll)
	if err != nil {
		if status.Code(err) == codes.PermissionDenied {
			return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return fmt.Errorf("put snapshot for %q: %w", uid, err)
	}
	return nil
}
