package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/cloud"
	"github.com/om607397-wq/namaa/internal/crypto"
	"github.com/om607397-wq/namaa/internal/models"
	"github.com/om607397-wq/namaa/internal/observe"
	"github.com/om607397-wq/namaa/internal/store"
	"github.com/om607397-wq/namaa/internal/tracker"
)

// ErrNotSignedIn is returned by sync operations invoked without a session,
// before any network call is made.
var ErrNotSignedIn = errors.New("no signed-in user")

// DownloadOutcome distinguishes the three terminal states of a download:
// data restored, no remote data exists, or (via the error return) failure.
type DownloadOutcome int

const (
	// DownloadRestored means remote data was fetched, parsed and has fully
	// replaced the local namespace.
	DownloadRestored DownloadOutcome = iota
	// DownloadNoData means the user has no remote document. The local
	// namespace was wiped: a missing snapshot marks a fresh identity, and
	// stale on-device records must not appear to belong to it.
	DownloadNoData
)

func (o DownloadOutcome) String() string {
	switch o {
	case DownloadRestored:
		return "restored"
	case DownloadNoData:
		return "no_data"
	default:
		return "unknown"
	}
}

// syncService implements SyncService over a namespace and a snapshot
// repository. Upload and Download are idempotent at the document level but
// are not meant to run concurrently for the same user; callers serialize
// them behind explicit user actions.
type syncService struct {
	ns        *store.Namespace
	trk       *tracker.Service
	snapshots cloud.SnapshotRepository
	sessions  *SessionManager
	cipher    *crypto.Cipher // nil means plaintext snapshots
	timeout   time.Duration
	log       *zap.Logger
	metrics   *observe.Metrics
	now       func() time.Time
}

// NewSyncService builds the cloud sync gateway. cipher may be nil; timeout
// bounds each remote call (zero means 30s).
func NewSyncService(
	ns *store.Namespace,
	trk *tracker.Service,
	snapshots cloud.SnapshotRepository,
	sessions *SessionManager,
	cipher *crypto.Cipher,
	timeout time.Duration,
	log *zap.Logger,
	metrics *observe.Metrics,
) SyncService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &syncService{
		ns:        ns,
		trk:       trk,
		snapshots: snapshots,
		sessions:  sessions,
		cipher:    cipher,
		timeout:   timeout,
		log:       log,
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *syncService) Upload(ctx context.Context) error {
	id, ok := s.sessions.Current()
	if !ok {
		return ErrNotSignedIn
	}

	data := s.ns.ExportAll()
	payload, err := json.Marshal(data)
	if err != nil {
		s.metrics.Uploads.WithLabelValues("error").Inc()
		return fmt.Errorf("serialize namespace: %w", err)
	}
	blob := string(payload)
	if s.cipher != nil {
		if blob, err = s.cipher.Seal(blob); err != nil {
			s.metrics.Uploads.WithLabelValues("error").Inc()
			return fmt.Errorf("encrypt snapshot: %w", err)
		}
	}

	snap := &models.Snapshot{
		UpdatedAt:   s.now().UTC(),
		ProfileName: s.trk.Profile().Name,
		Email:       id.Email,
		Data:        blob,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.snapshots.Put(ctx, id.UID, snap); err != nil {
		s.metrics.Uploads.WithLabelValues("error").Inc()
		s.log.Warn("snapshot upload failed", zap.String("uid", id.UID), zap.Error(err))
		return err
	}

	s.metrics.Uploads.WithLabelValues("ok").Inc()
	s.log.Info("snapshot uploaded",
		zap.String("uid", id.UID), zap.Int("keys", len(data)))
	return nil
}

func (s *syncService) Download(ctx context.Context) (DownloadOutcome, error) {
	id, ok := s.sessions.Current()
	if !ok {
		return 0, ErrNotSignedIn
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	snap, err := s.snapshots.Fetch(ctx, id.UID)
	if errors.Is(err, cloud.ErrNoSnapshot) {
		// Fresh identity: wipe so a previous account's records cannot
		// masquerade as this one's.
		s.ClearLocal()
		s.metrics.Downloads.WithLabelValues("no_data").Inc()
		s.log.Info("no remote snapshot, local namespace reset", zap.String("uid", id.UID))
		return DownloadNoData, nil
	}
	if err != nil {
		s.metrics.Downloads.WithLabelValues("error").Inc()
		s.log.Warn("snapshot download failed", zap.String("uid", id.UID), zap.Error(err))
		return 0, err
	}

	// Decode fully before touching local state: a failed download must
	// leave the pre-download namespace intact.
	blob := snap.Data
	if s.cipher != nil {
		if blob, err = s.cipher.Open(blob); err != nil {
			s.metrics.Downloads.WithLabelValues("error").Inc()
			return 0, fmt.Errorf("decrypt snapshot: %w", err)
		}
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		s.metrics.Downloads.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("parse snapshot data: %w", err)
	}

	s.ClearLocal()
	s.ns.RestoreAll(data)
	s.metrics.Downloads.WithLabelValues("restored").Inc()
	s.log.Info("snapshot restored",
		zap.String("uid", id.UID), zap.Int("keys", len(data)),
		zap.Time("remote_updated_at", snap.UpdatedAt))
	return DownloadRestored, nil
}

func (s *syncService) ClearLocal() {
	s.ns.Wipe(store.KeySettings)
}
