package core

import (
	"context"

	"github.com/om607397-wq/namaa/internal/models"
)

// AuthProvider is the external identity service. Implemented by
// cloud.FirebaseAuthProvider; tests substitute fakes.
type AuthProvider interface {
	// VerifyToken validates an ID token and returns the asserted identity.
	VerifyToken(ctx context.Context, idToken string) (models.Identity, error)
	// CreateUser registers a new email/password account.
	CreateUser(ctx context.Context, email, password string) (models.Identity, error)
}

// PrayerTimesProvider fetches prayer times for a location and date. The data
// is treated as pure external input; failures are not retried here.
type PrayerTimesProvider interface {
	Times(ctx context.Context, lat, lng float64, date string) (models.PrayerTimes, error)
}

// ChatProvider is the opaque text-completion service behind the companion
// chat. No core invariant depends on its output.
type ChatProvider interface {
	Complete(ctx context.Context, history []models.ChatMessage, text string) (string, error)
}

// SyncService is the cloud sync gateway over the local namespace.
type SyncService interface {
	// Upload serializes the full namespace into the user's remote document.
	Upload(ctx context.Context) error
	// Download fetches the remote document and, when data exists, replaces
	// the local namespace wholesale.
	Download(ctx context.Context) (DownloadOutcome, error)
	// ClearLocal wipes the namespace, preserving the device settings key.
	ClearLocal()
}

// AccountService manages the sign-in lifecycle and its local-state policy.
type AccountService interface {
	// Register creates a new account and signs it in. The local namespace is
	// cleared before the remote call so no ghost data precedes first sync.
	Register(ctx context.Context, email, password string) (models.Identity, error)
	// SignIn establishes a session from a verified ID token. The local
	// namespace is cleared before the session starts, for every sign-in
	// path, then a best-effort download restores the account's data.
	SignIn(ctx context.Context, idToken string) (models.Identity, error)
	// SignOut clears the local namespace and ends the session.
	SignOut(ctx context.Context) error
	// Current returns the signed-in identity, if any.
	Current() (models.Identity, bool)
}
