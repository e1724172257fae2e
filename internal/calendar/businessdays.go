package calendar

import (
	"time"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
)

// Calculator counts business days over calendar date ranges. The eligible
// weekday set is configurable; the default is Monday through Friday.
type Calculator struct {
	workdays map[time.Weekday]bool
}

// NewCalculator builds a Calculator for the given weekdays. With no
// arguments it uses Monday–Friday.
func NewCalculator(weekdays ...time.Weekday) *Calculator {
	if len(weekdays) == 0 {
		weekdays = []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		}
	}
	workdays := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		workdays[wd] = true
	}
	return &Calculator{workdays: workdays}
}

// IsBusinessDay reports whether the date's weekday is in the eligible set.
func (c *Calculator) IsBusinessDay(d models.Date) bool {
	return c.workdays[d.Weekday()]
}

// CountBusinessDays counts business days from start to end, inclusive of
// both endpoints. Returns 0 when either endpoint is absent or start > end;
// callers needing a positive duration must validate the range themselves.
func (c *Calculator) CountBusinessDays(start, end models.Date) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	count := 0
	for d := start; !d.After(end.Time); d = d.AddDays(1) {
		if c.IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// SumBusinessDays totals CountBusinessDays over all periods. Periods with a
// missing endpoint contribute 0.
func (c *Calculator) SumBusinessDays(periods []models.MaintenancePeriod) int {
	total := 0
	for _, p := range periods {
		total += c.CountBusinessDays(p.Entrada, p.Saida)
	}
	return total
}
