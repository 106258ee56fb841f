// Package report prints one-line user-facing messages.
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/internal/timeutil"
)

func RecordAdded(r *models.Record) {
	pterm.Info.Printfln(
		"logged %.2f km (%s) on %s",
		r.DistanceKM,
		r.Type,
		timeutil.DayKey(r.Date),
	)
}

func RecordsDeleted(count int) {
	pterm.Info.Printfln("deleted %d session(s)", count)
}

func RecordsImported(count, skipped int) {
	pterm.Info.Printfln("imported %d session(s), skipped %d row(s)", count, skipped)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
