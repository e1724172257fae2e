package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/logging"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
)

// LoadFromFiles reads the maintenance dataset and the optional settings
// overlay from disk and builds a store. A missing or malformed dataset file
// is the one fatal condition of the whole service; a missing overlay file
// just means no aircraft carries a planned exit.
func LoadFromFiles(dataPath, settingsPath string) (*ScheduleStore, error) {
	records, err := loadRecords(dataPath)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	return NewScheduleStore(records, settings), nil
}

func loadRecords(path string) (map[string]models.AircraftRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var records map[string]models.AircraftRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	// Malformed periods are flagged and dropped here rather than at render
	// time; one bad entry must never take down the rest of the calendar.
	for id, rec := range records {
		kept := rec.Maintenances[:0]
		for i, p := range rec.Maintenances {
			if p.Valid() {
				kept = append(kept, p)
				continue
			}
			logging.Warn("Skipping invalid maintenance period",
				"aircraft_id", id,
				"index", i,
				"entrada", p.Entrada.String(),
				"saida", p.Saida.String(),
			)
		}
		rec.Maintenances = kept
		records[id] = rec
	}
	return records, nil
}

func loadSettings(path string) (map[string]models.AircraftSettings, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Warn("Settings overlay not found, continuing without it", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading settings overlay %s: %w", path, err)
	}

	var settings map[string]models.AircraftSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings overlay %s: %w", path, err)
	}
	return settings, nil
}
