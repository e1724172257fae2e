package api

import (
	"net/http"
	"time"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models/dtos"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/store"
)

// HealthCheckHandler handles GET /health
//
// There is no external dependency to probe; the store is in-memory, so a
// loaded dataset is the whole liveness story.
func HealthCheckHandler(st *store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := dtos.HealthResponse{
			Status:         "OK",
			Message:        "Servidor funcionando!",
			TotalAeronaves: st.Count(),
			Timestamp:      time.Now().UTC(),
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
