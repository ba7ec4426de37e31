package models

import "time"

// Snapshot is the cloud backup document, one per Firebase identity. Data is
// the full local namespace serialized as a single JSON string (optionally
// encrypted). Uploads merge-write only these four fields; any other fields a
// future document version might carry survive untouched.
type Snapshot struct {
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
	ProfileName string    `firestore:"profileName" json:"profileName"`
	Email       string    `firestore:"email" json:"email"`
	Data        string    `firestore:"data" json:"data"`
}
