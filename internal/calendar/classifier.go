package calendar

import (
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
)

// Classifier decides, for a calendar day, whether it falls inside a
// maintenance window and whether it is delayed relative to the planned exit.
type Classifier struct {
	calc *Calculator
}

func NewClassifier(calc *Calculator) *Classifier {
	return &Classifier{calc: calc}
}

// FindMatchingPeriod returns the first period in list order covering the
// date. Non-business days never match, so weekends inside a window render as
// plain days. Invalid periods are skipped.
func (c *Classifier) FindMatchingPeriod(d models.Date, periods []models.MaintenancePeriod) (models.MaintenancePeriod, bool) {
	if !c.calc.IsBusinessDay(d) {
		return models.MaintenancePeriod{}, false
	}
	for _, p := range periods {
		if p.Valid() && p.Contains(d) {
			return p, true
		}
	}
	return models.MaintenancePeriod{}, false
}

// IsDelayed reports whether the date is strictly after the configured
// planned exit. A date equal to the planned exit is not delayed.
func IsDelayed(d models.Date, settings *models.AircraftSettings) bool {
	if settings == nil || settings.PlannedExit == nil || settings.PlannedExit.IsZero() {
		return false
	}
	return d.After(settings.PlannedExit.Time)
}

// ClassifyDay combines period matching and delay detection into a single
// status plus the tooltip label the UI shows verbatim. The completed branch
// (date == saida) is orthogonal to the delayed branch.
func (c *Classifier) ClassifyDay(d models.Date, periods []models.MaintenancePeriod, settings *models.AircraftSettings) (models.DayStatus, string) {
	period, ok := c.FindMatchingPeriod(d, periods)
	if !ok {
		return models.StatusNone, ""
	}

	completed := d.Equal(period.Saida.Time)
	delayed := IsDelayed(d, settings)

	var status models.DayStatus
	var label string
	switch {
	case completed && delayed:
		status = models.StatusCompletedDelayed
		label = "Concluído com atraso: " + period.Descricao
	case completed:
		status = models.StatusCompleted
		label = "Concluído: " + period.Descricao
	case delayed:
		status = models.StatusMaintenanceDelayed
		label = "Atraso: " + period.Descricao
	default:
		status = models.StatusMaintenance
		label = "Em andamento: " + period.Descricao
	}

	if settings != nil && settings.MaintenanceTeam != "" {
		label += " | Equipe: " + settings.MaintenanceTeam
	}
	return status, label
}
