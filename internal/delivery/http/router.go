package http

import (
	"net/http"

	"profesionesuy-api/internal/delivery/http/handler"
	"profesionesuy-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	clientHandler       *handler.ClientProfileHandler
	professionalHandler *handler.ProfessionalProfileHandler
	appointmentHandler  *handler.AppointmentHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	clientHandler *handler.ClientProfileHandler,
	professionalHandler *handler.ProfessionalProfileHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		clientHandler:       clientHandler,
		professionalHandler: professionalHandler,
		appointmentHandler:  appointmentHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/registro/cliente", r.authHandler.RegisterClient).Methods(http.MethodPost)
	auth.HandleFunc("/registro/profesional", r.authHandler.RegisterProfessional).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Profile routes (public reads: professional directory)
	profiles := api.PathPrefix("/profiles").Subrouter()
	profiles.HandleFunc("/profesionales", r.professionalHandler.ListProfessionals).Methods(http.MethodGet)
	profiles.HandleFunc("/profesionales/buscar", r.professionalHandler.SearchProfessionals).Methods(http.MethodGet)
	profiles.HandleFunc("/profesional/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	profiles.HandleFunc("/profesional/calificaciones/{id}", r.professionalHandler.GetRatings).Methods(http.MethodGet)
	profiles.HandleFunc("/profesional/horario/{id}", r.professionalHandler.GetSchedule).Methods(http.MethodGet)

	// Profile routes (protected)
	profilesProtected := api.PathPrefix("/profiles").Subrouter()
	profilesProtected.Use(r.authMiddleware.Authenticate)
	profilesProtected.HandleFunc("/cliente/{id}", r.clientHandler.GetClient).Methods(http.MethodGet)
	profilesProtected.Handle("/cliente/actualizar/{id}", middleware.RequireClient(http.HandlerFunc(r.clientHandler.UpdateClient))).Methods(http.MethodPut)
	profilesProtected.Handle("/profesional/actualizar/{id}", middleware.RequireProfessional(http.HandlerFunc(r.professionalHandler.UpdateProfessional))).Methods(http.MethodPut)
	profilesProtected.Handle("/profesional/horario/{id}", middleware.RequireProfessional(http.HandlerFunc(r.professionalHandler.SetSchedule))).Methods(http.MethodPost)
	profilesProtected.Handle("/profesional/calificacion/{id}", middleware.RequireClient(http.HandlerFunc(r.professionalHandler.RateProfessional))).Methods(http.MethodPost)

	// Appointment routes (slots are public, the rest requires auth)
	api.HandleFunc("/appointments/available-slots/{professionalId}/{date}", r.appointmentHandler.GetAvailableSlots).Methods(http.MethodGet)

	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("", middleware.RequireClient(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/client/{id}", r.appointmentHandler.GetAppointmentsByClient).Methods(http.MethodGet)
	appointments.HandleFunc("/professional/{id}", r.appointmentHandler.GetAppointmentsByProfessional).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Audit log routes (protected)
	audit := api.PathPrefix("/audit-logs").Subrouter()
	audit.Use(r.authMiddleware.Authenticate)
	audit.HandleFunc("", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	audit.HandleFunc("/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
