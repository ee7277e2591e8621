package domain

import "time"

const (
	CheckInStatusCheckedIn    = "Checked In"
	CheckInStatusNotCheckedIn = "Not Checked In"
)

// WalkReport is the immutable record produced when a session is
// finalized. Every field is a denormalized snapshot so the row
// survives deletion of the session, users, and dogs it came from.
type WalkReport struct {
	ID            int32     `json:"id"`
	WalkDate      string    `json:"walk_date"`
	WalkTime      string    `json:"walk_time"`
	WalkerName    string    `json:"walker_name"`
	MarshalName   string    `json:"marshal_name"`
	DogName       *string   `json:"dog_name,omitempty"` // nil when the walker had no assigned dog
	CheckInStatus string    `json:"check_in_status"`
	CreatedOn     time.Time `json:"created_on"`
}
