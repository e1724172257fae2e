package models

// DayStatus classifies one calendar day of an aircraft's year.
type DayStatus string

const (
	// StatusNone marks a plain calendar day outside any maintenance window.
	StatusNone DayStatus = "none"
	// StatusMaintenance marks an on-time day inside a maintenance window.
	StatusMaintenance DayStatus = "maintenance"
	// StatusMaintenanceDelayed marks a maintenance day past the planned exit.
	StatusMaintenanceDelayed DayStatus = "maintenance-delayed"
	// StatusCompleted marks the last day (saida) of a maintenance window.
	StatusCompleted DayStatus = "completed"
	// StatusCompletedDelayed marks a last day that is also past the planned exit.
	StatusCompletedDelayed DayStatus = "completed-delayed"
)

// InMaintenance reports whether the status belongs to a maintenance window.
func (s DayStatus) InMaintenance() bool {
	return s != StatusNone && s != ""
}

// Delayed reports whether the status is past the planned exit date.
func (s DayStatus) Delayed() bool {
	return s == StatusMaintenanceDelayed || s == StatusCompletedDelayed
}

// DayCell is one day of a month grid, annotated with its classification.
// Label carries the tooltip text the presentation layer shows as-is.
type DayCell struct {
	Day    int       `json:"day"`
	Date   Date      `json:"date"`
	Status DayStatus `json:"status"`
	Label  string    `json:"label,omitempty"`
}

// MonthGrid is the renderable layout of one month: LeadingBlanks empty cells
// (weekday index of day 1, 0 = Sunday) followed by one cell per day.
type MonthGrid struct {
	Month         int       `json:"month"`
	Name          string    `json:"name"`
	LeadingBlanks int       `json:"leadingBlanks"`
	Days          []DayCell `json:"days"`
}

// YearGrid is the full 12-month calendar of one aircraft.
type YearGrid struct {
	Year   int         `json:"year"`
	Months []MonthGrid `json:"months"`
}
