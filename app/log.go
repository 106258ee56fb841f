package app

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/internal/timeutil"
	"github.com/oarlock/rowflow/pace"
	"github.com/oarlock/rowflow/report"
)

// logInput collects the raw session fields before parsing. All fields are
// text so the interactive form and the flag path share one code path.
type logInput struct {
	date     string
	distance string
	duration string
	split    string
	sessType string
	notes    string
}

func logAction(ctx *cli.Context) error {
	input := logInput{
		date:     ctx.String("date"),
		split:    ctx.String("split"),
		sessType: ctx.String("type"),
		notes:    ctx.String("notes"),
	}

	if ctx.IsSet("distance") {
		input.distance = strconv.FormatFloat(ctx.Float64("distance"), 'f', -1, 64)
	}

	if ctx.IsSet("duration") {
		input.duration = strconv.FormatFloat(ctx.Float64("duration"), 'f', -1, 64)
	}

	// Without any of the three pace quantities there is nothing to log,
	// so fall back to the interactive form
	if input.distance == "" && input.duration == "" && input.split == "" {
		if err := promptSession(&input); err != nil {
			return err
		}
	}

	record, err := buildRecord(&input)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AddRecord(record); err != nil {
		return err
	}

	slog.Info("session logged",
		slog.String("date", timeutil.DayKey(record.Date)),
		slog.Float64("distance_km", record.DistanceKM),
		slog.Float64("duration_min", record.DurationMin),
		slog.String("session_type", string(record.Type)),
	)

	report.RecordAdded(record)

	return nil
}

// promptSession fills the input from an interactive form.
func promptSession(input *logInput) error {
	typeOptions := make([]huh.Option[string], 0, len(models.SessionTypes))
	for _, t := range models.SessionTypes {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}

	input.sessType = settings.DefaultType

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("Defaults to today").
				Value(&input.date),
			huh.NewInput().
				Title("Distance (km)").
				Value(&input.distance),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&input.duration),
			huh.NewInput().
				Title("Split per 500m").
				Description("M:SS.s, e.g. 2:05.3 (derived if distance and duration are set)").
				Value(&input.split),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Session type").
				Options(typeOptions...).
				Value(&input.sessType),
			huh.NewText().
				Title("Notes").
				Value(&input.notes),
		),
	)

	return form.Run()
}

// buildRecord parses and validates the raw input, deriving the missing
// pace quantity and the average speed.
func buildRecord(input *logInput) (*models.Record, error) {
	date := toUTCDate(time.Now())

	if input.date != "" {
		parsed, err := dateparse.ParseAny(input.date)
		if err != nil {
			return nil, fmt.Errorf("invalid session date: %w", err)
		}

		date = toUTCDate(parsed)
	}

	var quantities pace.Quantities

	var err error

	if input.distance != "" {
		quantities.DistanceKM, err = strconv.ParseFloat(input.distance, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid distance: %w", err)
		}
	}

	if input.duration != "" {
		quantities.DurationMin, err = strconv.ParseFloat(input.duration, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid duration: %w", err)
		}
	}

	if input.split != "" {
		quantities.SplitSec, err = pace.ParseSplit(input.split)
		if err != nil {
			return nil, err
		}
	}

	quantities = pace.Resolve(quantities)

	var speed float64

	if quantities.DistanceKM > 0 && quantities.DurationMin > 0 {
		speed, err = pace.Speed(quantities.DistanceKM, quantities.DurationMin)
		if err != nil {
			return nil, err
		}

		speed = math.Round(speed*100) / 100
	}

	sessType := models.SessionType(
		firstNonEmptyString(input.sessType, settings.DefaultType),
	)
	if sessType == "" {
		sessType = models.TypeOther
	}

	record := &models.Record{
		Date:        date,
		DistanceKM:  quantities.DistanceKM,
		DurationMin: quantities.DurationMin,
		SpeedKMH:    speed,
		Type:        sessType,
		Notes:       input.notes,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}
