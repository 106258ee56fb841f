package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/internal/timeutil"
)

// csvHeader is the rowing log interchange format shared by export and
// import.
var csvHeader = []string{
	"date",
	"distance_km",
	"duration_min",
	"speed_kmh",
	"session_type",
	"notes",
	"created_at",
}

var errCSVHeader = errors.New(
	"unrecognized CSV header: expected a rowing log export",
)

func formatNum(v float64) string {
	if v == 0 {
		return ""
	}

	return strconv.FormatFloat(v, 'f', 2, 64)
}

// parseNum is the inverse of formatNum: an empty field reads as zero.
func parseNum(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}

// WriteCSV serialises records to w in the rowing log interchange format.
func WriteCSV(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := range records {
		r := records[i]

		row := []string{
			timeutil.DayKey(r.Date),
			formatNum(r.DistanceKM),
			formatNum(r.DurationMin),
			formatNum(r.SpeedKMH),
			string(r.Type),
			r.Notes,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a rowing log export. Rows that fail validation are
// skipped rather than aborting the whole import; the number of skipped
// rows is reported alongside the parsed records.
func ReadCSV(r io.Reader) (records []models.Record, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading CSV header: %w", err)
	}

	for i, field := range header {
		if field != csvHeader[i] {
			return nil, 0, errCSVHeader
		}
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, skipped, err
		}

		rec, ok := recordFromRow(row)
		if !ok {
			skipped++
			continue
		}

		records = append(records, rec)
	}

	return records, skipped, nil
}

func recordFromRow(row []string) (models.Record, bool) {
	date, err := timeutil.ParseDay(row[0])
	if err != nil {
		return models.Record{}, false
	}

	distance, err := parseNum(row[1])
	if err != nil {
		return models.Record{}, false
	}

	duration, err := parseNum(row[2])
	if err != nil {
		return models.Record{}, false
	}

	// Speed is optional in the interchange format
	speed, _ := parseNum(row[3])

	sessType := models.SessionType(row[4])
	if sessType == "" {
		sessType = models.TypeOther
	}

	createdAt, err := time.Parse(time.RFC3339, row[6])
	if err != nil {
		createdAt = time.Time{}
	}

	rec := models.Record{
		Date:        date,
		DistanceKM:  distance,
		DurationMin: duration,
		SpeedKMH:    speed,
		Type:        sessType,
		Notes:       row[5],
		CreatedAt:   createdAt,
	}

	if rec.Validate() != nil {
		return models.Record{}, false
	}

	return rec, true
}
