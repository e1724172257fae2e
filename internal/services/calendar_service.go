package services

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/calendar"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/metrics"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models/dtos"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/store"
)

// CalendarService derives calendar views from the schedule store. Grids are
// pure functions of a record plus its settings, so they are memoized under
// the store fingerprint; any mutation changes the fingerprint and the next
// request rebuilds.
type CalendarService struct {
	store      *store.ScheduleStore
	calc       *calendar.Calculator
	classifier *calendar.Classifier
	cache      *cache.Cache
	group      singleflight.Group
	metrics    *metrics.MetricsRegistry
}

func NewCalendarService(st *store.ScheduleStore, calc *calendar.Calculator, ttl time.Duration, metricsReg *metrics.MetricsRegistry) *CalendarService {
	return &CalendarService{
		store:      st,
		calc:       calc,
		classifier: calendar.NewClassifier(calc),
		cache:      cache.New(ttl, 2*ttl),
		metrics:    metricsReg,
	}
}

// YearGrid returns the memoized 12-month grid for one aircraft. Record,
// settings and memo key come from one store snapshot so the cached grid
// always matches the state its key names.
func (s *CalendarService) YearGrid(id string) (models.YearGrid, error) {
	rec, settings, key, err := s.store.Snapshot(id)
	if err != nil {
		return models.YearGrid{}, err
	}

	if cached, found := s.cache.Get(key); found {
		if grid, ok := cached.(models.YearGrid); ok {
			if s.metrics != nil {
				s.metrics.CacheHitsTotal.WithLabelValues(id).Inc()
			}
			return grid, nil
		}
	}
	if s.metrics != nil {
		s.metrics.CacheMissesTotal.WithLabelValues(id).Inc()
	}

	// singleflight collapses concurrent rebuilds of the same fingerprint.
	built, err, _ := s.group.Do(key, func() (interface{}, error) {
		year := calendar.ResolveYear(rec)
		grid := s.classifier.BuildYearGrid(year, rec.Maintenances, settings)
		s.cache.Set(key, grid, cache.DefaultExpiration)
		if s.metrics != nil {
			s.metrics.GridsBuiltTotal.Inc()
		}
		return grid, nil
	})
	if err != nil {
		return models.YearGrid{}, err
	}
	return built.(models.YearGrid), nil
}

// Summary returns the info-panel view of one aircraft: resolved year, total
// business days under maintenance and per-period durations.
func (s *CalendarService) Summary(id string) (dtos.AircraftSummary, error) {
	rec, err := s.store.GetByID(id)
	if err != nil {
		return dtos.AircraftSummary{}, err
	}

	valid := rec.ValidMaintenances()
	summary := dtos.AircraftSummary{
		Prefix:         rec.Prefix,
		Name:           rec.Name,
		Year:           calendar.ResolveYear(rec),
		TotalDiasUteis: s.calc.SumBusinessDays(valid),
		Manutencoes:    make([]dtos.MaintenanceSummary, 0, len(valid)),
	}

	for _, p := range valid {
		summary.Manutencoes = append(summary.Manutencoes, dtos.MaintenanceSummary{
			Descricao: p.Descricao,
			Entrada:   p.Entrada,
			Saida:     p.Saida,
			DiasUteis: s.calc.CountBusinessDays(p.Entrada, p.Saida),
		})
	}

	if settings, ok := s.store.GetSettings(id); ok {
		summary.Critical = settings.Critical
		summary.MaintenanceTeam = settings.MaintenanceTeam
		summary.PlannedExit = settings.PlannedExit
	}
	return summary, nil
}
