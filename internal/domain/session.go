package domain

import "time"

// SessionCapacity is the maximum number of active bookings a walk
// session accepts. Admission control enforces it inside the booking
// insert transaction.
const SessionCapacity = 4

// WalkSession is a marshal-opened walk slot. It exists only while
// walks are pending: cancellation deletes it outright, finalization
// replaces it with WalkReport rows.
type WalkSession struct {
	ID        int32     `json:"id"`
	MarshalID int32     `json:"marshal_id"`
	WalkDate  string    `json:"walk_date"` // 2006-01-02
	WalkTime  string    `json:"walk_time"` // 15:04
	DogID     *int32    `json:"dog_id,omitempty"`
	CreatedOn time.Time `json:"created_on"`

	Bookings []Booking `json:"bookings,omitempty"` // populated on list reads
}

// Booking is a walker's reservation into a session.
type Booking struct {
	ID        int32     `json:"id"`
	SessionID int32     `json:"session_id"`
	WalkerID  int32     `json:"walker_id"`
	DogName   string    `json:"dog_name"`
	StartTime string    `json:"start_time"` // 15:04
	EndTime   string    `json:"end_time"`   // 15:04
	CheckedIn bool      `json:"checked_in"`
	CreatedOn time.Time `json:"created_on"`
}

// Assignment pairs a walker with a dog within a session. The triple is
// set-semantic: re-assigning an existing pair is a no-op.
type Assignment struct {
	SessionID int32 `json:"session_id"`
	WalkerID  int32 `json:"walker_id"`
	DogID     int32 `json:"dog_id"`
}
