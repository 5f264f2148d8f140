package models

import "time"

// LoginAttempt is one row of the authentication audit trail.
type LoginAttempt struct {
	Email      string    `bson:"email" json:"email"`
	Department string    `bson:"department" json:"department"`
	Method     string    `bson:"method" json:"method"`
	Outcome    string    `bson:"outcome" json:"outcome"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	RemoteAddr string    `bson:"remote_addr" json:"remote_addr"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// AuthEvent is the fire-and-forget message published for the
// notification service.
type AuthEvent struct {
	Type       string    `json:"type"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	OccurredAt time.Time `json:"occurred_at"`
}
