package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusDenied   RequestStatus = "DENIED"
)

type RequestAction string

const (
	RequestActionApprove RequestAction = "approve"
	RequestActionDeny    RequestAction = "deny"
)

// RequestState is the common shape shared by both request workflows
// (role upgrade, adoption). The cooldown gate operates on this alone.
type RequestState struct {
	Status      RequestStatus
	RequestedOn *time.Time
	ProcessedOn *time.Time
}

// RoleRequest is the user-keyed view of the role-upgrade columns on a
// user row.
type RoleRequest struct {
	UserID      int32         `json:"user_id"`
	UserName    string        `json:"user_name"`
	Reason      string        `json:"reason"`
	Status      RequestStatus `json:"status"`
	RequestedOn *time.Time    `json:"requested_on,omitempty"`
	ProcessedOn *time.Time    `json:"processed_on,omitempty"`
}

func (r *RoleRequest) State() RequestState {
	return RequestState{Status: r.Status, RequestedOn: r.RequestedOn, ProcessedOn: r.ProcessedOn}
}

type AdoptionRequest struct {
	ID          int32         `json:"id"`
	UserID      int32         `json:"user_id"`
	DogID       int32         `json:"dog_id"`
	Status      RequestStatus `json:"status"`
	RequestedOn time.Time     `json:"requested_on"`
	ProcessedOn *time.Time    `json:"processed_on,omitempty"`
}

func (r *AdoptionRequest) State() RequestState {
	requested := r.RequestedOn
	return RequestState{Status: r.Status, RequestedOn: &requested, ProcessedOn: r.ProcessedOn}
}
