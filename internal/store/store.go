package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
)

// ScheduleStore holds the aircraft dataset and the settings overlay in
// memory for the process lifetime. All access goes through an RWMutex so
// the HTTP handlers can read and mutate it from parallel requests.
type ScheduleStore struct {
	mu       sync.RWMutex
	records  map[string]models.AircraftRecord
	settings map[string]models.AircraftSettings

	// generation bumps on wholesale replacement, revs per-id on edits.
	// Together they fingerprint a record for calendar memoization.
	generation uint64
	revs       map[string]uint64
}

// NewScheduleStore builds a store from pre-loaded tables. Nil maps are
// treated as empty.
func NewScheduleStore(records map[string]models.AircraftRecord, settings map[string]models.AircraftSettings) *ScheduleStore {
	if records == nil {
		records = make(map[string]models.AircraftRecord)
	}
	if settings == nil {
		settings = make(map[string]models.AircraftSettings)
	}
	return &ScheduleStore{
		records:  records,
		settings: settings,
		revs:     make(map[string]uint64),
	}
}

// GetAll returns a copy of the full id → record mapping.
func (s *ScheduleStore) GetAll() map[string]models.AircraftRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.AircraftRecord, len(s.records))
	for id, rec := range s.records {
		out[id] = cloneRecord(rec)
	}
	return out
}

// GetByID returns the record for id or ErrAircraftNotFound.
func (s *ScheduleStore) GetByID(id string) (models.AircraftRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return models.AircraftRecord{}, fmt.Errorf("%w: %s", ErrAircraftNotFound, id)
	}
	return cloneRecord(rec), nil
}

// GetSettings returns the settings overlay entry for id, if any.
func (s *ScheduleStore) GetSettings(id string) (models.AircraftSettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.settings[id]
	return cfg, ok
}

// IDs returns all record ids in sorted order.
func (s *ScheduleStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of aircraft records.
func (s *ScheduleStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// AddMaintenance validates and appends a period to the record's list.
func (s *ScheduleStore) AddMaintenance(id string, p models.MaintenancePeriod) error {
	if p.Entrada.IsZero() || p.Saida.IsZero() {
		return ErrInvalidPeriod
	}
	if p.Entrada.After(p.Saida.Time) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, p.Entrada, p.Saida)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAircraftNotFound, id)
	}
	rec.Maintenances = append(clonePeriods(rec.Maintenances), p)
	s.records[id] = rec
	s.revs[id]++
	return nil
}

// UpdateSettings shallow-merges the patch into the overlay entry for id,
// creating the entry when none existed. Unset patch fields are retained.
func (s *ScheduleStore) UpdateSettings(id string, patch models.SettingsPatch) models.AircraftSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.settings[id]
	if patch.PlannedExit != nil {
		exit := *patch.PlannedExit
		cfg.PlannedExit = &exit
	}
	if patch.Critical != nil {
		cfg.Critical = *patch.Critical
	}
	if patch.MaintenanceTeam != nil {
		cfg.MaintenanceTeam = *patch.MaintenanceTeam
	}
	s.settings[id] = cfg
	s.revs[id]++
	return cfg
}

// ReplaceAll swaps in a new dataset wholesale, used for bulk reload. The
// settings overlay is kept; it is edited independently.
func (s *ScheduleStore) ReplaceAll(records map[string]models.AircraftRecord) {
	if records == nil {
		records = make(map[string]models.AircraftRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.generation++
}

// Fingerprint identifies the current state of one record plus its settings.
// Any mutation touching the id produces a new fingerprint, so memoized
// calendar grids keyed by it recompute after edits.
func (s *ScheduleStore) Fingerprint(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprintLocked(id)
}

func (s *ScheduleStore) fingerprintLocked(id string) string {
	return fmt.Sprintf("%s@%d.%d", id, s.generation, s.revs[id])
}

// Snapshot returns the record, its settings entry and the fingerprint of
// exactly that state under a single read lock. Callers memoizing derived
// views must use this rather than separate Get calls: a mutation landing
// between two lock sections could pair a stale record with the fresh
// fingerprint and poison the cache entry for it.
func (s *ScheduleStore) Snapshot(id string) (models.AircraftRecord, *models.AircraftSettings, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return models.AircraftRecord{}, nil, "", fmt.Errorf("%w: %s", ErrAircraftNotFound, id)
	}

	var settings *models.AircraftSettings
	if cfg, ok := s.settings[id]; ok {
		settings = &cfg
	}
	return cloneRecord(rec), settings, s.fingerprintLocked(id), nil
}

func cloneRecord(rec models.AircraftRecord) models.AircraftRecord {
	rec.Maintenances = clonePeriods(rec.Maintenances)
	return rec
}

func clonePeriods(periods []models.MaintenancePeriod) []models.MaintenancePeriod {
	if periods == nil {
		return nil
	}
	out := make([]models.MaintenancePeriod, len(periods))
	copy(out, periods)
	return out
}
