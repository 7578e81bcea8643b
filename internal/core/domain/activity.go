package domain

import "time"

// ActivityKind classifies an entry in the account audit trail.
type ActivityKind string

const (
	ActivitySignup        ActivityKind = "signup"
	ActivityLogin         ActivityKind = "login"
	ActivityProfileUpdate ActivityKind = "profile_update"
)

// Activity records a single account event for the audit trail.
type Activity struct {
	UserID    string
	Kind      ActivityKind
	Timestamp time.Time
}
