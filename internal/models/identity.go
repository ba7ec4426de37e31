package models

// Identity is the authenticated user as asserted by the auth provider.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
