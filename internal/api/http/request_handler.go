package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/service"
)

// RequestHandler serves both request/cooldown workflows: role
// upgrades and adoptions.
type RequestHandler struct {
	roles     service.RoleRequestService
	adoptions service.AdoptionService
}

func NewRequestHandler(roles service.RoleRequestService, adoptions service.AdoptionService) *RequestHandler {
	return &RequestHandler{roles: roles, adoptions: adoptions}
}

type roleRequestBody struct {
	Reason string `json:"reason"`
}

func (h *RequestHandler) SubmitRoleRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	var body roleRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	req, err := h.roles.Submit(r.Context(), actor, body.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) GetMyRoleRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	req, err := h.roles.GetMine(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) ListPendingRoleRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	reqs, err := h.roles.ListPending(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reqs == nil {
		reqs = []domain.RoleRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

type decisionBody struct {
	Action string `json:"action"`
}

func (h *RequestHandler) DecideRoleRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	userID, err := pathID(r, mux.Vars(r), "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body decisionBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	req, err := h.roles.Decide(r.Context(), actor, userID, domain.RequestAction(body.Action))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) DemoteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	userID, err := pathID(r, mux.Vars(r), "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.roles.Demote(r.Context(), actor, userID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "demoted"})
}

type adoptionRequestBody struct {
	DogID int32 `json:"dog_id"`
}

func (h *RequestHandler) SubmitAdoptionRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	var body adoptionRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	req, err := h.adoptions.Submit(r.Context(), actor, body.DogID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) ListMyAdoptionRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	reqs, err := h.adoptions.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reqs == nil {
		reqs = []domain.AdoptionRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *RequestHandler) ListPendingAdoptionRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	reqs, err := h.adoptions.ListPending(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reqs == nil {
		reqs = []domain.AdoptionRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *RequestHandler) DecideAdoptionRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	requestID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body decisionBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	req, err := h.adoptions.Decide(r.Context(), actor, requestID, domain.RequestAction(body.Action))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
