package dtos

import (
	"time"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
)

// APIResponse is the envelope used by mutating endpoints.
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}

// APIMetadata describes the service at GET /.
type APIMetadata struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status         string    `json:"status"`
	Message        string    `json:"message"`
	TotalAeronaves int       `json:"totalAeronaves"`
	Timestamp      time.Time `json:"timestamp"`
}

// MaintenanceSummary is one maintenance entry with its business-day duration.
type MaintenanceSummary struct {
	Descricao string      `json:"descricao"`
	Entrada   models.Date `json:"entrada"`
	Saida     models.Date `json:"saida"`
	DiasUteis int         `json:"diasUteis"`
}

// AircraftSummary mirrors the per-aircraft info panel: identity, resolved
// year, total business days under maintenance and the settings overlay.
type AircraftSummary struct {
	Prefix          string               `json:"prefix"`
	Name            string               `json:"name,omitempty"`
	Year            int                  `json:"year"`
	TotalDiasUteis  int                  `json:"totalDiasUteis"`
	Critical        bool                 `json:"critical"`
	MaintenanceTeam string               `json:"maintenanceTeam,omitempty"`
	PlannedExit     *models.Date         `json:"plannedExit,omitempty"`
	Manutencoes     []MaintenanceSummary `json:"manutencoes"`
}
