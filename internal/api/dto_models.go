package api

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RegisterRequest creates a new email/password account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignInRequest establishes a session from a Firebase ID token. The token
// may come from any client-side sign-in method (email/password, Google);
// the server applies one uniform clear-before-sign-in policy either way.
type SignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// SessionResponse describes the active session.
type SessionResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// SyncResponse reports the outcome of an upload or download.
type SyncResponse struct {
	Outcome string `json:"outcome"`
}

// ScoreResponse carries the derived daily score.
type ScoreResponse struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// BookmarkRequest updates the profile's Quran bookmark.
type BookmarkRequest struct {
	Page int `json:"page" binding:"required,min=1,max=604"`
}

// ChatRequest is one user turn of the companion chat.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse is the model's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// PrayerTimesQuery selects a location and day for the prayer-times fetch.
// When Lat/Lng are omitted the stored location config is used.
type PrayerTimesQuery struct {
	Lat  *float64 `form:"lat"`
	Lng  *float64 `form:"lng"`
	Date string   `form:"date"`
}
