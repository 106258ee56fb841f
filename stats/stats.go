// Package stats computes aggregate reports over the rowing session log.
package stats

import (
	"math"
	"sort"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/internal/timeutil"
)

// CumulativePoint is one step of the running-total mileage series.
type CumulativePoint struct {
	Date string  `json:"date"`
	KM   float64 `json:"km"`
}

// YearlyTableResult holds the daily mileage for every calendar day of one
// year and the cumulative series walking those days in order.
type YearlyTableResult struct {
	Year         int                `json:"year"`
	DailyMileage map[string]float64 `json:"daily_mileage"`
	Cumulative   []CumulativePoint  `json:"cumulative"`
}

// MonthlyTotalsResult holds per-type distance totals for each month of one
// year. Every month key 01-12 is present, and every session type listed in
// SessionTypes appears in every month with an explicit zero when no
// distance was logged.
type MonthlyTotalsResult struct {
	Year         int                           `json:"year"`
	SessionTypes []string                      `json:"session_types"`
	Totals       map[string]map[string]float64 `json:"totals"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// inYear reports whether the record carries a valid date in the given year.
// Records that fail this check are skipped silently so a single malformed
// entry cannot abort a whole report.
func inYear(r *models.Record, year int) bool {
	return !r.Date.IsZero() && r.Date.Year() == year
}

// YearlyTable sums logged distance per calendar day for the given year.
// The complete ordered key set for the year is built first and records are
// folded into it, so day keys are exhaustive (365 or 366 entries) no matter
// how sparse the log is.
func YearlyTable(records []models.Record, year int) *YearlyTableResult {
	daily := make(map[string]float64, timeutil.DaysInYear(year))

	next := timeutil.YearStart(year + 1)
	for d := timeutil.YearStart(year); d.Before(next); d = d.AddDate(0, 0, 1) {
		daily[timeutil.DayKey(d)] = 0
	}

	for i := range records {
		r := records[i]

		if !inYear(&r, year) {
			continue
		}

		daily[timeutil.DayKey(r.Date)] += r.DistanceKM
	}

	cumulative := make([]CumulativePoint, 0, len(daily))

	var total float64

	for d := timeutil.YearStart(year); d.Before(next); d = d.AddDate(0, 0, 1) {
		key := timeutil.DayKey(d)
		total += daily[key]

		cumulative = append(cumulative, CumulativePoint{
			Date: key,
			KM:   round2(total),
		})
	}

	return &YearlyTableResult{
		Year:         year,
		DailyMileage: daily,
		Cumulative:   cumulative,
	}
}

// MonthlyTotals sums logged distance per month and session type for the
// given year. Session types outside the declared vocabulary are preserved
// verbatim and appended to the type list in first-seen order, each seeded
// with zeros across all twelve months.
func MonthlyTotals(records []models.Record, year int) *MonthlyTotalsResult {
	types := make([]string, 0, len(models.SessionTypes))
	for _, t := range models.SessionTypes {
		types = append(types, string(t))
	}

	totals := make(map[string]map[string]float64, 12)

	for m := timeutil.YearStart(year); m.Year() == year; m = m.AddDate(0, 1, 0) {
		byType := make(map[string]float64, len(types))
		for _, t := range types {
			byType[t] = 0
		}

		totals[timeutil.MonthKey(m)] = byType
	}

	seed := func(t string) {
		types = append(types, t)
		for _, byType := range totals {
			byType[t] = 0
		}
	}

	for i := range records {
		r := records[i]

		if !inYear(&r, year) {
			continue
		}

		t := string(r.Type)
		if t == "" {
			t = string(models.TypeOther)
		}

		month := totals[timeutil.MonthKey(r.Date)]
		if _, ok := month[t]; !ok {
			seed(t)
		}

		month[t] += r.DistanceKM
	}

	return &MonthlyTotalsResult{
		Year:         year,
		SessionTypes: types,
		Totals:       totals,
	}
}

// AllRecords returns the full collection ordered by date ascending, with
// insertion order (created_at, then position in the source collection)
// breaking same-date ties.
func AllRecords(records []models.Record) []models.Record {
	out := make([]models.Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}
