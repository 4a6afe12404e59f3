package http

import (
	"net/http"

	"ehr-backend/internal/delivery/http/handler"
	"ehr-backend/internal/delivery/http/middleware"
	"ehr-backend/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router           *mux.Router
	log              *logrus.Logger
	allowedOrigin    string
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	visitHandler     *handler.VisitHandler
	documentHandler  *handler.DocumentHandler
	digestiveHandler *handler.DigestiveHandler
	ehrRecordHandler *handler.EHRRecordHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	log *logrus.Logger,
	allowedOrigin string,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	visitHandler *handler.VisitHandler,
	documentHandler *handler.DocumentHandler,
	digestiveHandler *handler.DigestiveHandler,
	ehrRecordHandler *handler.EHRRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		log:              log,
		allowedOrigin:    allowedOrigin,
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		visitHandler:     visitHandler,
		documentHandler:  documentHandler,
		digestiveHandler: digestiveHandler,
		ehrRecordHandler: ehrRecordHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
	}
}

// Setup registers every route and returns the router wrapped in the
// logging, recovery and CORS middleware. CORS sits outside the router so
// preflight requests never reach route matching.
func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (session optional)
	optional := api.NewRoute().Subrouter()
	optional.Use(r.authMiddleware.Optional)
	optional.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	optional.HandleFunc("/check-auth", r.authHandler.CheckAuth).Methods(http.MethodGet)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Patients
	protected.HandleFunc("/patients/search", r.patientHandler.Search).Methods(http.MethodGet)
	protected.HandleFunc("/patients/verify", r.patientHandler.Verify).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Visits
	protected.HandleFunc("/patients/{id:[0-9]+}/visits", r.visitHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id:[0-9]+}/visits", r.visitHandler.ListByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{id:[0-9]+}", r.visitHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{id:[0-9]+}", r.visitHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/visits/{id:[0-9]+}", r.visitHandler.Delete).Methods(http.MethodDelete)

	// Documents
	protected.HandleFunc("/visits/{id:[0-9]+}/documents", r.documentHandler.Upload).Methods(http.MethodPost)
	protected.HandleFunc("/visits/{id:[0-9]+}/documents", r.documentHandler.ListByVisit).Methods(http.MethodGet)
	protected.HandleFunc("/documents/{id:[0-9]+}", r.documentHandler.Delete).Methods(http.MethodDelete)

	// Digestive visit
	protected.HandleFunc("/digestive/{patient_id:[0-9]+}", r.digestiveHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/digestive/{patient_id:[0-9]+}", r.digestiveHandler.Save).Methods(http.MethodPost)

	// EHR record
	protected.HandleFunc("/visits/{id:[0-9]+}/ehr", r.ehrRecordHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{id:[0-9]+}/ehr", r.ehrRecordHandler.Save).Methods(http.MethodPut)

	// Audit trail
	protected.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Stored uploads
	uploads := r.router.PathPrefix("/uploads").Subrouter()
	uploads.Use(r.authMiddleware.Authenticate)
	uploads.HandleFunc("/{filename}", r.documentHandler.ServeFile).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	var h http.Handler = r.router
	h = middleware.NewCORSMiddleware(r.allowedOrigin)(h)
	h = middleware.NewRecoveryMiddleware(r.log)(h)
	h = middleware.NewLoggingMiddleware(r.log)(h)
	return h
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
