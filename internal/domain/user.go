package domain

import "time"

type Role string

const (
	RoleWalker  Role = "WALKER"
	RoleMarshal Role = "MARSHAL"
	RoleAdmin   Role = "ADMIN"
)

// Identity is the verified (user, role) pair produced by the auth layer.
// Everything below the HTTP middleware trusts it as-is.
type Identity struct {
	UserID int32 `json:"user_id"`
	Role   Role  `json:"role"`
}

func (i Identity) IsAdmin() bool   { return i.Role == RoleAdmin }
func (i Identity) IsMarshal() bool { return i.Role == RoleMarshal }

// CanManageWalks reports whether the identity may check walkers in,
// assign dogs, or finalize sessions.
func (i Identity) CanManageWalks() bool {
	return i.Role == RoleAdmin || i.Role == RoleMarshal
}

type User struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// Role-upgrade request columns live on the user row. An empty
	// RoleRequestStatus means the user has never asked.
	RoleRequestStatus      RequestStatus `json:"role_request_status,omitempty"`
	RoleRequestReason      string        `json:"role_request_reason,omitempty"`
	RoleRequestedOn        *time.Time    `json:"role_requested_on,omitempty"`
	RoleRequestProcessedOn *time.Time    `json:"role_request_processed_on,omitempty"`
}
