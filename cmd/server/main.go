package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/calendar"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/config"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/logging"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/metrics"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/routes"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/services"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/store"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Calendário de Aeronaves starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Dataset load is the one fatal failure mode of this service.
	st, err := store.LoadFromFiles(cfg.DataFile, cfg.SettingsFile)
	if err != nil {
		logging.Fatal("Failed to load maintenance dataset", "error", err.Error())
	}
	logging.Info("Maintenance dataset loaded",
		"aircraft", st.Count(),
		"data_file", cfg.DataFile,
		"settings_file", cfg.SettingsFile,
	)

	metricsReg := metrics.NewMetricsRegistry()
	metricsReg.AircraftConfigured.Set(float64(st.Count()))

	calc := calendar.NewCalculator(weekdaysFromConfig(cfg.BusinessDays)...)
	calendars := services.NewCalendarService(st, calc, cfg.CacheTTL, metricsReg)

	router := routes.RegisterRoutes(st, calendars, metricsReg)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := fmt.Sprintf(":%d", cfg.Port)
	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func weekdaysFromConfig(days []int) []time.Weekday {
	weekdays := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, time.Weekday(d))
	}
	return weekdays
}
