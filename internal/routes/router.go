package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/api"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/logging"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/metrics"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/middleware"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/services"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/store"
)

// Version reported by GET /.
const Version = "1.0.0"

// RegisterRoutes wires the HTTP surface: the read routes the calendar
// frontend consumes and the mutating routes for runtime edits.
func RegisterRoutes(st *store.ScheduleStore, calendars *services.CalendarService, metricsReg *metrics.MetricsRegistry) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/", api.MetadataHandler(Version))
	r.Get("/health", api.HealthCheckHandler(st))

	r.Route("/api/aeronaves", func(ar chi.Router) {
		ar.Get("/", api.ListAircraftHandler(st))
		ar.Put("/", api.ReloadHandler(st))

		ar.Route("/{id}", func(one chi.Router) {
			one.Get("/", api.GetAircraftHandler(st))
			one.Get("/calendario", api.GetCalendarHandler(calendars))
			one.Get("/resumo", api.GetSummaryHandler(calendars))
			one.Post("/manutencoes", api.AddMaintenanceHandler(st))
			one.Patch("/config", api.UpdateSettingsHandler(st))
		})
	})

	return r
}
