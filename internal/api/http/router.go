package http

import (
	"github.com/gorilla/mux"

	"dogwalk-backend/internal/security"
	"dogwalk-backend/internal/service"
)

// NewRouter builds the full API surface under /api/v1 with the
// middleware chain applied to every route.
func NewRouter(
	tokens security.TokenManager,
	sessions service.SessionService,
	reports service.ReportService,
	roles service.RoleRequestService,
	adoptions service.AdoptionService,
	dogs service.DogService,
) *mux.Router {
	sessionHandler := NewSessionHandler(sessions)
	reportHandler := NewReportHandler(reports)
	requestHandler := NewRequestHandler(roles, adoptions)
	dogHandler := NewDogHandler(dogs)
	auth := NewAuthMiddleware(tokens)

	router := mux.NewRouter()
	router.Use(RequestID, RequestLogger)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Handler)

	// Sessions
	api.HandleFunc("/sessions", sessionHandler.OpenSession).Methods("POST")
	api.HandleFunc("/sessions", sessionHandler.ListSessions).Methods("GET")
	api.HandleFunc("/sessions/{id}", sessionHandler.CancelSession).Methods("DELETE")
	api.HandleFunc("/sessions/{id}/bookings", sessionHandler.BookWalker).Methods("POST")
	api.HandleFunc("/sessions/{id}/complete", sessionHandler.CompleteSession).Methods("POST")

	// Bookings
	api.HandleFunc("/bookings/check-in", sessionHandler.CheckIn).Methods("PUT")
	api.HandleFunc("/bookings/undo-check-in", sessionHandler.UndoCheckIn).Methods("PUT")
	api.HandleFunc("/bookings/assign-dogs", sessionHandler.AssignDogs).Methods("POST")

	// Reports
	api.HandleFunc("/reports", reportHandler.ListReports).Methods("GET")
	api.HandleFunc("/reports", reportHandler.DeleteAllReports).Methods("DELETE")
	api.HandleFunc("/reports/{id}", reportHandler.DeleteReport).Methods("DELETE")

	// Role-upgrade requests
	api.HandleFunc("/role-requests", requestHandler.SubmitRoleRequest).Methods("POST")
	api.HandleFunc("/role-requests", requestHandler.ListPendingRoleRequests).Methods("GET")
	api.HandleFunc("/role-requests/mine", requestHandler.GetMyRoleRequest).Methods("GET")
	api.HandleFunc("/role-requests/{userId}", requestHandler.DecideRoleRequest).Methods("PUT")
	api.HandleFunc("/role-requests/{userId}", requestHandler.DemoteUser).Methods("DELETE")

	// Adoption requests
	api.HandleFunc("/adoption-requests", requestHandler.SubmitAdoptionRequest).Methods("POST")
	api.HandleFunc("/adoption-requests", requestHandler.ListPendingAdoptionRequests).Methods("GET")
	api.HandleFunc("/adoption-requests/mine", requestHandler.ListMyAdoptionRequests).Methods("GET")
	api.HandleFunc("/adoption-requests/{id}", requestHandler.DecideAdoptionRequest).Methods("PUT")

	// Dogs
	api.HandleFunc("/dogs", dogHandler.CreateDog).Methods("POST")
	api.HandleFunc("/dogs", dogHandler.ListDogs).Methods("GET")
	api.HandleFunc("/dogs/{id}", dogHandler.GetDog).Methods("GET")

	return router
}
