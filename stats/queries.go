package stats

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/internal/timeutil"
	"github.com/oarlock/rowflow/store"
)

// ErrInvalidYear indicates a year argument that is not a plausible
// four-digit calendar year.
var ErrInvalidYear = errors.New(
	"please provide a valid four-digit year",
)

// ParseYear parses a raw year argument, e.g. a query-string value.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidYear
	}

	if year < 1000 || year > 9999 {
		return 0, ErrInvalidYear
	}

	return year, nil
}

// RecordRow is the serialisable form of a session record.
type RecordRow struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	DistanceKM  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	SpeedKMH    float64 `json:"speed_kmh"`
	SessionType string  `json:"session_type"`
	Notes       string  `json:"notes"`
	CreatedAt   string  `json:"created_at"`
}

// RecordsResult is the full session log in serialisable form.
type RecordsResult struct {
	Rows []RecordRow `json:"rows"`
}

// Queries routes read operations to the aggregation functions over a
// snapshot of the session log. It is the only layer aware of raw text
// arguments from external callers.
type Queries struct {
	db store.DB
}

// NewQueries returns a Queries reading from the given store.
func NewQueries(db store.DB) *Queries {
	return &Queries{db: db}
}

func (q *Queries) snapshot() ([]models.Record, error) {
	return q.db.GetRecords(time.Time{}, time.Time{}, nil)
}

// YearlyTable computes the zero-filled daily mileage table and cumulative
// series for the given raw year argument.
func (q *Queries) YearlyTable(yearArg string) (*YearlyTableResult, error) {
	year, err := ParseYear(yearArg)
	if err != nil {
		return nil, err
	}

	records, err := q.snapshot()
	if err != nil {
		return nil, err
	}

	return YearlyTable(records, year), nil
}

// MonthlyTotals computes the per-type monthly distance totals for the
// given raw year argument.
func (q *Queries) MonthlyTotals(yearArg string) (*MonthlyTotalsResult, error) {
	year, err := ParseYear(yearArg)
	if err != nil {
		return nil, err
	}

	records, err := q.snapshot()
	if err != nil {
		return nil, err
	}

	return MonthlyTotals(records, year), nil
}

// AllRecords returns the whole log ordered by date, then insertion order.
func (q *Queries) AllRecords() (*RecordsResult, error) {
	records, err := q.snapshot()
	if err != nil {
		return nil, err
	}

	ordered := AllRecords(records)

	rows := make([]RecordRow, 0, len(ordered))

	for i := range ordered {
		r := ordered[i]

		rows = append(rows, RecordRow{
			ID:          r.ID,
			Date:        timeutil.DayKey(r.Date),
			DistanceKM:  r.DistanceKM,
			DurationMin: r.DurationMin,
			SpeedKMH:    r.SpeedKMH,
			SessionType: string(r.Type),
			Notes:       r.Notes,
			CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return &RecordsResult{Rows: rows}, nil
}
