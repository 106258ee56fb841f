package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/urfave/cli/v2"

	"github.com/oarlock/rowflow/config"
	"github.com/oarlock/rowflow/internal/timeutil"
	"github.com/oarlock/rowflow/internal/ui"
	"github.com/oarlock/rowflow/report"
	"github.com/oarlock/rowflow/stats"
	"github.com/oarlock/rowflow/store"
)

const (
	envNoColor        = "NO_COLOR"
	envRowflowNoColor = "ROWFLOW_NO_COLOR"
)

var settings *config.Settings

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	var err error

	settings, err = config.Load()
	if err != nil {
		return err
	}

	ui.DarkTheme = settings.DarkTheme

	if ctx.Bool("no-color") || os.Getenv(envNoColor) != "" ||
		os.Getenv(envRowflowNoColor) != "" {
		disableStyling()
	}

	config.InitLogging()

	return nil
}

func openDB() (*store.Client, error) {
	return store.NewClient(config.DBFilePath())
}

// dayFlag parses a natural-language date flag into a date at midnight UTC.
func dayFlag(ctx *cli.Context, name string) (time.Time, error) {
	v := ctx.String(name)
	if v == "" {
		return time.Time{}, nil
	}

	t, err := dateparse.ParseAny(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date: %w", name, err)
	}

	return toUTCDate(t), nil
}

func toUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// statsAction handles the stats command which reports yearly training
// volume totals.
func statsAction(ctx *cli.Context) error {
	yearStr := ctx.String("year")
	if yearStr == "" {
		yearStr = strconv.Itoa(time.Now().Year())
	}

	year, err := stats.ParseYear(yearStr)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.GetRecords(
		timeutil.YearStart(year),
		timeutil.YearEnd(year),
		nil,
	)
	if err != nil {
		return err
	}

	yearly := stats.YearlyTable(records, year)
	monthly := stats.MonthlyTotals(records, year)

	printYearSummary(os.Stdout, records, yearly, monthly)

	return nil
}

func serveAction(ctx *cli.Context) error {
	port := ctx.Uint("port")
	if port == 0 {
		port = settings.ServerPort
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	return stats.Server(db, port)
}

func exportAction(ctx *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.GetRecords(time.Time{}, time.Time{}, nil)
	if err != nil {
		return err
	}

	out := os.Stdout

	if path := ctx.String("output"); path != "" {
		out, err = os.Create(path)
		if err != nil {
			return err
		}
		defer out.Close()
	}

	return store.WriteCSV(out, stats.AllRecords(records))
}

func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return fmt.Errorf("please provide a CSV file to import")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, skipped, err := store.ReadCSV(f)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	for i := range records {
		if err := db.AddRecord(&records[i]); err != nil {
			return err
		}
	}

	slog.Info("imported sessions",
		slog.Int("count", len(records)),
		slog.Int("skipped", skipped),
	)

	report.RecordsImported(len(records), skipped)

	return nil
}

// editConfigAction handles the edit-config command which opens the
// rowflow config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.FilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

