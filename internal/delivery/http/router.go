package http

import (
	"net/http"

	"patient-registry/internal/delivery/http/handler"
	"patient-registry/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	specialistHandler *handler.SpecialistHandler
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	specialistHandler *handler.SpecialistHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		specialistHandler: specialistHandler,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

// Setup registers the routes. Logging and CORS wrap the whole router so
// that preflight and unmatched requests pass through them too.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Specialists
	api.HandleFunc("/specialists", r.specialistHandler.GetSpecialists).Methods(http.MethodGet)
	api.HandleFunc("/specialists", r.specialistHandler.CreateSpecialist).Methods(http.MethodPost)
	api.HandleFunc("/specialists/deactivate", r.specialistHandler.DeactivateSpecialist).Methods(http.MethodPost)

	// Patients; export is registered before {id} so it is not parsed as one
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.DeletePatients).Methods(http.MethodDelete)
	api.HandleFunc("/patients/export", r.patientHandler.ExportPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
