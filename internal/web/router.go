package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asvnatz/strafenkasse/internal/dependencies/clock"
	"github.com/asvnatz/strafenkasse/internal/services/auth"
	"github.com/asvnatz/strafenkasse/internal/services/export"
	"github.com/asvnatz/strafenkasse/internal/services/ledger"
	"github.com/asvnatz/strafenkasse/internal/services/report"
	"github.com/asvnatz/strafenkasse/internal/web/handler"
	"github.com/asvnatz/strafenkasse/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	Clock         clock.Clock
	AuthService   *auth.Service
	LedgerService *ledger.Service
	ReportService *report.Service
	ExportService *export.Service
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	metricsMiddleware := middleware.Metrics()
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(metricsMiddleware)

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	dashboardHandler := handler.NewDashboardHandler(cfg.ReportService)
	penaltiesHandler := handler.NewPenaltiesHandler(cfg.LedgerService, cfg.Clock)
	statisticsHandler := handler.NewStatisticsHandler(cfg.ReportService, cfg.Clock)
	playersHandler := handler.NewPlayersHandler(cfg.LedgerService)
	penaltyTypesHandler := handler.NewPenaltyTypesHandler(cfg.LedgerService)
	exportHandler := handler.NewExportHandler(cfg.ExportService, cfg.LedgerService)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Public routes (login page and actions)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require a session)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)

	protected.HandleFunc("/dashboard", dashboardHandler.Dashboard).Methods(http.MethodGet)

	protected.HandleFunc("/penalties", penaltiesHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/penalties", penaltiesHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/penalties/{id}/delete", penaltiesHandler.Delete).Methods(http.MethodPost)

	protected.HandleFunc("/statistics", statisticsHandler.Show).Methods(http.MethodGet)

	protected.HandleFunc("/players", playersHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/players", playersHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/players/{id}/delete", playersHandler.Delete).Methods(http.MethodPost)

	protected.HandleFunc("/penalty-types", penaltyTypesHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/penalty-types", penaltyTypesHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/penalty-types/{id}", penaltyTypesHandler.Update).Methods(http.MethodPost)

	protected.HandleFunc("/export", exportHandler.Page).Methods(http.MethodGet)
	protected.HandleFunc("/export/csv", exportHandler.Download).Methods(http.MethodGet)

	return r
}
