package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/service"
)

// SessionHandler exposes the session lifecycle: open, list, cancel,
// book, check-in, dog assignment and finalization.
type SessionHandler struct {
	sessions service.SessionService
}

func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type openSessionRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	DogID *int32 `json:"dog_id,omitempty"`
}

func (h *SessionHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	var req openSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.sessions.OpenSession(r.Context(), actor, req.Date, req.Time, req.DogID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	sessions, err := h.sessions.ListSessions(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []domain.WalkSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *SessionHandler) CancelSession(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	sessionID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.sessions.CancelSession(r.Context(), actor, sessionID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

type bookingRequest struct {
	DogName   string `json:"dog_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (h *SessionHandler) BookWalker(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	sessionID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req bookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.sessions.BookWalker(r.Context(), actor, sessionID, req.DogName, req.StartTime, req.EndTime)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

type checkInRequest struct {
	SessionID int32 `json:"session_id"`
	WalkerID  int32 `json:"walker_id"`
}

func (h *SessionHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.setCheckIn(w, r, true)
}

func (h *SessionHandler) UndoCheckIn(w http.ResponseWriter, r *http.Request) {
	h.setCheckIn(w, r, false)
}

func (h *SessionHandler) setCheckIn(w http.ResponseWriter, r *http.Request, checkedIn bool) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	var req checkInRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.sessions.SetCheckIn(r.Context(), actor, req.SessionID, req.WalkerID, checkedIn); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"checked_in": checkedIn})
}

type assignDogsRequest struct {
	SessionID int32   `json:"session_id"`
	WalkerID  int32   `json:"walker_id"`
	DogIDs    []int32 `json:"dog_ids"`
}

func (h *SessionHandler) AssignDogs(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	var req assignDogsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.sessions.AssignDogs(r.Context(), actor, req.SessionID, req.WalkerID, req.DogIDs); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "assigned"})
}

func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	sessionID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	reports, err := h.sessions.CompleteSession(r.Context(), actor, sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"report_rows": reports})
}
