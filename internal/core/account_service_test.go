package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/models"
)

// fakeAuth is an in-memory AuthProvider keyed by token and email.
type fakeAuth struct {
	tokens    map[string]models.Identity
	createErr error
}

func (f *fakeAuth) VerifyToken(_ context.Context, idToken string) (models.Identity, error) {
	id, ok := f.tokens[idToken]
	if !ok {
		return models.Identity{}, errors.New("invalid token")
	}
	return id, nil
}

func (f *fakeAuth) CreateUser(_ context.Context, email, _ string) (models.Identity, error) {
	if f.createErr != nil {
		return models.Identity{}, f.createErr
	}
	return models.Identity{UID: "new-uid", Email: email}, nil
}

func newAccountFixture(t *testing.T) (*syncFixture, *fakeAuth, AccountService) {
	t.Helper()
	f := newSyncFixture(t)
	auth := &fakeAuth{tokens: map[string]models.Identity{}}
	accounts := NewAccountService(auth, f.sessions, f.sync, zap.NewNop())
	return f, auth, accounts
}

func TestRegisterClearsLocalBeforeSession(t *testing.T) {
	f, _, accounts := newAccountFixture(t)

	profile := f.trk.Profile()
	profile.Name = "ضيف"
	f.trk.SaveProfile(profile)

	id, err := accounts.Register(context.Background(), "new@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "new-uid", id.UID)

	current, ok := accounts.Current()
	require.True(t, ok)
	assert.Equal(t, id, current)
	// Guest-mode records must not follow the new account.
	assert.Equal(t, models.DefaultProfile().Name, f.trk.Profile().Name)
}

func TestRegisterFailureLeavesSignedOut(t *testing.T) {
	_, auth, accounts := newAccountFixture(t)
	auth.createErr = errors.New("email already in use")

	_, err := accounts.Register(context.Background(), "dup@example.com", "secret123")
	require.Error(t, err)
	_, ok := accounts.Current()
	assert.False(t, ok)
}

func TestSignInRestoresAccountData(t *testing.T) {
	f, auth, accounts := newAccountFixture(t)
	id := models.Identity{UID: "uid-9", Email: "a@example.com"}
	auth.tokens["tok"] = id

	// Seed a remote snapshot for the account.
	f.sessions.Set(id)
	profile := f.trk.Profile()
	profile.Name = "عائشة"
	f.trk.SaveProfile(profile)
	require.NoError(t, f.sync.Upload(context.Background()))
	require.NoError(t, accounts.SignOut(context.Background()))

	got, err := accounts.SignIn(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, "عائشة", f.trk.Profile().Name)
}

func TestSignInClearsPreviousAccountData(t *testing.T) {
	f, auth, accounts := newAccountFixture(t)
	auth.tokens["tok-b"] = models.Identity{UID: "uid-b", Email: "b@example.com"}

	// Leftover state from another identity, and no remote data for uid-b.
	profile := f.trk.Profile()
	profile.Name = "غريب"
	f.trk.SaveProfile(profile)

	_, err := accounts.SignIn(context.Background(), "tok-b")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfile().Name, f.trk.Profile().Name)
}

func TestSignInRejectsInvalidToken(t *testing.T) {
	f, _, accounts := newAccountFixture(t)

	profile := f.trk.Profile()
	profile.Name = "محفوظ"
	f.trk.SaveProfile(profile)

	_, err := accounts.SignIn(context.Background(), "bogus")
	require.Error(t, err)
	_, ok := accounts.Current()
	assert.False(t, ok)
	// A rejected token must not wipe anything.
	assert.Equal(t, "محفوظ", f.trk.Profile().Name)
}

func TestSignInSurvivesFailedInitialDownload(t *testing.T) {
	f, auth, accounts := newAccountFixture(t)
	auth.tokens["tok"] = models.Identity{UID: "uid-c", Email: "c@example.com"}
	f.repo.fetchErr = errors.New("transport down")

	id, err := accounts.SignIn(context.Background(), "tok")
	require.NoError(t, err)

	current, ok := accounts.Current()
	require.True(t, ok)
	assert.Equal(t, id, current)
}

func TestSignOutClearsSessionAndRecords(t *testing.T) {
	f, auth, accounts := newAccountFixture(t)
	auth.tokens["tok"] = models.Identity{UID: "uid-d", Email: "d@example.com"}

	_, err := accounts.SignIn(context.Background(), "tok")
	require.NoError(t, err)

	profile := f.trk.Profile()
	profile.Name = "مؤقت"
	f.trk.SaveProfile(profile)
	settings := f.trk.Settings()
	settings.DhikrEnabled = false
	f.trk.SaveSettings(settings)

	require.NoError(t, accounts.SignOut(context.Background()))

	_, ok := accounts.Current()
	assert.False(t, ok)
	assert.Equal(t, models.DefaultProfile().Name, f.trk.Profile().Name)
	// Device settings are the one thing a sign-out keeps.
	assert.False(t, f.trk.Settings().DhikrEnabled)
}
