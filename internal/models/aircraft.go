package models

// MaintenancePeriod is a closed date interval during which an aircraft is
// grounded for maintenance. The wire format keeps the operator-facing
// Portuguese field names used by the dataset files.
type MaintenancePeriod struct {
	Entrada   Date   `json:"entrada"`
	Saida     Date   `json:"saida"`
	Descricao string `json:"descricao"`
}

// Valid reports whether both endpoints are present and entrada <= saida.
// Invalid periods are skipped by consumers, never rendered.
func (p MaintenancePeriod) Valid() bool {
	if p.Entrada.IsZero() || p.Saida.IsZero() {
		return false
	}
	return !p.Entrada.After(p.Saida.Time)
}

// Contains reports whether date falls inside [entrada, saida].
func (p MaintenancePeriod) Contains(d Date) bool {
	return !d.Before(p.Entrada.Time) && !d.After(p.Saida.Time)
}

// AircraftRecord is one aircraft entry in the maintenance dataset, keyed in
// the store by its lowercase tail-number slug (e.g. "pp-fcf").
type AircraftRecord struct {
	Prefix       string              `json:"prefix"`
	Name         string              `json:"name,omitempty"`
	Description  string              `json:"description,omitempty"`
	Year         int                 `json:"year,omitempty"`
	Maintenances []MaintenancePeriod `json:"maintenances"`
}

// ValidMaintenances returns the periods that pass Valid, in list order.
func (r AircraftRecord) ValidMaintenances() []MaintenancePeriod {
	valid := make([]MaintenancePeriod, 0, len(r.Maintenances))
	for _, p := range r.Maintenances {
		if p.Valid() {
			valid = append(valid, p)
		}
	}
	return valid
}

// AircraftSettings is the per-aircraft overlay table, independently editable
// from the dataset. Absence of an entry is valid: delay classification simply
// never triggers.
type AircraftSettings struct {
	PlannedExit     *Date  `json:"plannedExit,omitempty"`
	Critical        bool   `json:"critical"`
	MaintenanceTeam string `json:"maintenanceTeam,omitempty"`
}

// SettingsPatch is a partial settings update. Nil fields are left untouched
// by the merge.
type SettingsPatch struct {
	PlannedExit     *Date   `json:"plannedExit"`
	Critical        *bool   `json:"critical"`
	MaintenanceTeam *string `json:"maintenanceTeam"`
}
