package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/models"
)

// accountService implements AccountService. Its one policy decision: the
// local namespace is cleared before EVERY sign-in path, not just register,
// so switching accounts can never surface the previous account's records.
type accountService struct {
	auth     AuthProvider
	sessions *SessionManager
	sync     SyncService
	log      *zap.Logger
}

// NewAccountService builds the account lifecycle service.
func NewAccountService(auth AuthProvider, sessions *SessionManager, sync SyncService, log *zap.Logger) AccountService {
	return &accountService{auth: auth, sessions: sessions, sync: sync, log: log}
}

func (s *accountService) Register(ctx context.Context, email, password string) (models.Identity, error) {
	// Clear before the remote call so no ghost data precedes first sync.
	s.sync.ClearLocal()

	id, err := s.auth.CreateUser(ctx, email, password)
	if err != nil {
		return models.Identity{}, fmt.Errorf("register account: %w", err)
	}
	s.sessions.Set(id)
	s.log.Info("account registered", zap.String("uid", id.UID))
	return id, nil
}

func (s *accountService) SignIn(ctx context.Context, idToken string) (models.Identity, error) {
	id, err := s.auth.VerifyToken(ctx, idToken)
	if err != nil {
		return models.Identity{}, err
	}

	s.sync.ClearLocal()
	s.sessions.Set(id)

	// Restore the account's data immediately, best effort: a transport
	// failure here still leaves a valid (empty) signed-in state and the
	// user can retry the download explicitly.
	if outcome, err := s.sync.Download(ctx); err != nil {
		s.log.Warn("initial sync after sign-in failed", zap.String("uid", id.UID), zap.Error(err))
	} else {
		s.log.Info("initial sync after sign-in", zap.String("uid", id.UID), zap.Stringer("outcome", outcome))
	}
	return id, nil
}

func (s *accountService) SignOut(_ context.Context) error {
	// Clear first: even racing an in-flight upload, the wipe is the last
	// writer to local state.
	s.sync.ClearLocal()
	s.sessions.Clear()
	s.log.Info("signed out, local namespace cleared")
	return nil
}

func (s *accountService) Current() (models.Identity, bool) {
	return s.sessions.Current()
}
