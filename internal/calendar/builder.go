package calendar

import (
	"time"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
)

// Month names in pt-BR, matching what the calendar UI displays.
var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// ResolveYear picks the calendar year for a record: the explicit year field,
// else the year of the first valid period's entrada, else the current year.
func ResolveYear(rec models.AircraftRecord) int {
	if rec.Year != 0 {
		return rec.Year
	}
	for _, p := range rec.Maintenances {
		if p.Valid() {
			return p.Entrada.Year()
		}
	}
	return time.Now().Year()
}

// BuildYearGrid produces the 12-month day grid for one aircraft. The result
// is a pure function of (year, periods, settings) and safe to memoize.
func (c *Classifier) BuildYearGrid(year int, periods []models.MaintenancePeriod, settings *models.AircraftSettings) models.YearGrid {
	grid := models.YearGrid{
		Year:   year,
		Months: make([]models.MonthGrid, 0, 12),
	}
	for month := time.January; month <= time.December; month++ {
		grid.Months = append(grid.Months, c.buildMonth(year, month, periods, settings))
	}
	return grid
}

func (c *Classifier) buildMonth(year int, month time.Month, periods []models.MaintenancePeriod, settings *models.AircraftSettings) models.MonthGrid {
	first := models.NewDate(year, month, 1)
	// Day 0 of the next month is the last day of this one.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	mg := models.MonthGrid{
		Month:         int(month),
		Name:          monthNames[month-1],
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]models.DayCell, 0, lastDay),
	}
	for day := 1; day <= lastDay; day++ {
		date := models.NewDate(year, month, day)
		status, label := c.ClassifyDay(date, periods, settings)
		mg.Days = append(mg.Days, models.DayCell{
			Day:    day,
			Date:   date,
			Status: status,
			Label:  label,
		})
	}
	return mg
}
