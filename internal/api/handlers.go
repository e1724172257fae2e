package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/logging"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/middleware"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models/dtos"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/services"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/store"
)

const msgAircraftNotFound = "Aeronave não encontrada"

// MetadataHandler handles GET /
//
// Returns the API self-description the frontend probes at startup.
func MetadataHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta := dtos.APIMetadata{
			Message: "API do Calendário de Aeronaves",
			Version: version,
			Endpoints: map[string]string{
				"todasAeronaves":     "/api/aeronaves",
				"aeronaveEspecifica": "/api/aeronaves/{id}",
				"calendarioAeronave": "/api/aeronaves/{id}/calendario",
				"resumoAeronave":     "/api/aeronaves/{id}/resumo",
				"healthCheck":        "/health",
			},
		}
		writeJSON(w, http.StatusOK, meta)
	}
}

// ListAircraftHandler handles GET /api/aeronaves
func ListAircraftHandler(st *store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := st.GetAll()
		logging.Debug("Serving aircraft dataset", "total", len(records))
		writeJSON(w, http.StatusOK, records)
	}
}

// GetAircraftHandler handles GET /api/aeronaves/{id}
func GetAircraftHandler(st *store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		rec, err := st.GetByID(id)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: msgAircraftNotFound})
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// GetCalendarHandler handles GET /api/aeronaves/{id}/calendario
//
// Returns the 12-month day grid a presentation layer renders as-is.
func GetCalendarHandler(calendars *services.CalendarService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		grid, err := calendars.YearGrid(id)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: msgAircraftNotFound})
			return
		}
		writeJSON(w, http.StatusOK, grid)
	}
}

// GetSummaryHandler handles GET /api/aeronaves/{id}/resumo
func GetSummaryHandler(calendars *services.CalendarService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		summary, err := calendars.Summary(id)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: msgAircraftNotFound})
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// AddMaintenanceHandler handles POST /api/aeronaves/{id}/manutencoes
func AddMaintenanceHandler(st *store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var period models.MaintenancePeriod
		if err := json.NewDecoder(r.Body).Decode(&period); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid maintenance payload: "+err.Error())
			return
		}

		if err := st.AddMaintenance(id, period); err != nil {
			switch {
			case errors.Is(err, store.ErrAircraftNotFound):
				respondWithError(w, http.StatusNotFound, msgAircraftNotFound)
			case errors.Is(err, store.ErrInvalidPeriod), errors.Is(err, store.ErrInvalidDateRange):
				respondWithError(w, http.StatusBadRequest, err.Error())
			default:
				logging.Error("Failed to add maintenance period", "aircraft_id", id, "error", err.Error())
				respondWithError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		logging.WithRequest(middleware.RequestIDFromContext(r.Context()), r.URL.Path).Infow(
			"Maintenance period added",
			"aircraft_id", id,
			"entrada", period.Entrada.String(),
			"saida", period.Saida.String(),
		)

		rec, err := st.GetByID(id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithSuccess(w, http.StatusCreated, &rec)
	}
}

// UpdateSettingsHandler handles PATCH /api/aeronaves/{id}/config
//
// Shallow merge: fields absent from the body are retained. The settings
// table is independently editable, so ids without a dataset record are
// accepted too.
func UpdateSettingsHandler(st *store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch models.SettingsPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid settings payload: "+err.Error())
			return
		}

		merged := st.UpdateSettings(id, patch)
		logging.WithRequest(middleware.RequestIDFromContext(r.Context()), r.URL.Path).Infow(
			"Aircraft settings updated", "aircraft_id", id)
		respondWithSuccess(w, http.StatusOK, &merged)
	}
}

// ReloadHandler handles PUT /api/aeronaves
//
// Wholesale dataset replacement for bulk reload. Invalid periods are
// dropped with a warning, matching startup load behavior.
func ReloadHandler(st *store.ScheduleStore) http.HandlerFunc {
	type reloadResult struct {
		TotalAeronaves int `json:"totalAeronaves"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var records map[string]models.AircraftRecord
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid dataset payload: "+err.Error())
			return
		}

		for id, rec := range records {
			kept := make([]models.MaintenancePeriod, 0, len(rec.Maintenances))
			for _, p := range rec.Maintenances {
				if p.Valid() {
					kept = append(kept, p)
					continue
				}
				logging.Warn("Dropping invalid maintenance period on reload", "aircraft_id", id)
			}
			rec.Maintenances = kept
			records[id] = rec
		}

		st.ReplaceAll(records)
		logging.Info("Dataset replaced", "total", st.Count(), "ids", st.IDs())
		respondWithSuccess(w, http.StatusOK, &reloadResult{TotalAeronaves: st.Count()})
	}
}
