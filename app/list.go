package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/internal/timeutil"
	"github.com/oarlock/rowflow/internal/ui"
	"github.com/oarlock/rowflow/pace"
	"github.com/oarlock/rowflow/stats"
	"github.com/oarlock/rowflow/store"
)

const noSessionsMsg = "No sessions found for the specified time range"

// recordHelper fetches records according to the list/delete filter flags,
// ordered by date then insertion order.
func recordHelper(ctx *cli.Context) ([]models.Record, *store.Client, error) {
	start, err := dayFlag(ctx, "start")
	if err != nil {
		return nil, nil, err
	}

	end, err := dayFlag(ctx, "end")
	if err != nil {
		return nil, nil, err
	}

	if !end.IsZero() {
		end = timeutil.RoundToEnd(end)
	}

	var types []string
	if ctx.String("type") != "" {
		types = strings.Split(ctx.String("type"), ",")
	}

	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}

	records, err := db.GetRecords(start, end, types)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return stats.AllRecords(records), db, nil
}

// listAction handles the list command which prints a table of sessions.
func listAction(ctx *cli.Context) error {
	records, db, err := recordHelper(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printRecordsTable(os.Stdout, records)

	return nil
}

// printRecordsTable prints a session record table to the command-line.
// The split column is derived from the stored speed; a session without a
// positive speed has no defined split and the cell stays blank.
func printRecordsTable(w io.Writer, records []models.Record) {
	tableBody := make([][]string, len(records))

	for i := range records {
		r := records[i]

		var split string

		splitSec, err := pace.SplitFromSpeed(r.SpeedKMH)
		if err == nil {
			split = pace.FormatSplit(splitSec)
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			r.Date.Format("Jan 02, 2006"),
			fmt.Sprintf("%.2f", r.DistanceKM),
			fmt.Sprintf("%.0f", r.DurationMin),
			split,
			fmt.Sprintf("%.2f", r.SpeedKMH),
			string(r.Type),
			r.Notes,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "DATE", "KM", "MIN", "SPLIT", "KM/H", "TYPE", "NOTES"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}
