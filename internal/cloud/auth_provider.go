package cloud

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/om607397-wq/namaa/internal/models"
)

// ErrInvalidToken is returned when an ID token fails verification.
var ErrInvalidToken = errors.New("invalid or expired identity token")

// FirebaseAuthProvider verifies ID tokens and manages accounts against
// Firebase Auth. It satisfies core.AuthProvider.
type FirebaseAuthProvider struct {
	client *auth.Client
}

// NewFirebaseAuthProvider creates a provider over an initialized Auth client.
func NewFirebaseAuthProvider(client *auth.Client) *FirebaseAuthProvider {
	return &FirebaseAuthProvider{client: client}
}

// VerifyToken checks a Firebase ID token and returns the identity it
// asserts. The email claim may be empty for provider-based accounts that
// expose none.
func (p *FirebaseAuthProvider) VerifyToken(ctx context.Context, idToken string) (models.Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id := models.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}

// CreateUser registers a new email/password account and returns its identity.
func (p *FirebaseAuthProvider) CreateUser(ctx context.Context, email, password string) (models.Identity, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return models.Identity{}, fmt.Errorf("create user: %w", err)
	}
	return models.Identity{UID: record.UID, Email: record.Email}, nil
}
