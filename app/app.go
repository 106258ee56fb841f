package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/oarlock/rowflow/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the rowflow app instance.
func Get() *cli.App {
	rowflowApp := &cli.App{
		Name: "rowflow",
		Usage: `
		Rowflow is a rowing training log for the command-line. It records each
		session's distance, duration, pace, and type, and reports daily,
		monthly, and cumulative mileage over a training year.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name: "log",
				Usage: `
				Log a session. Provide any two of distance, duration, and split and
				the third is derived. Run without flags for an interactive form`,
				Action: logAction,
				Flags: []cli.Flag{
					dateFlag,
					distanceFlag,
					durationFlag,
					splitFlag,
					typeFlag,
					notesFlag,
				},
			},
			{
				Name:   "list",
				Usage:  "Print a table of logged sessions",
				Action: listAction,
				Flags: []cli.Flag{
					startFlag,
					endFlag,
					typeFlag,
				},
			},
			{
				Name: "stats",
				Usage: `
				Track your training volume with yearly statistics: totals by month
				and session type, plus cumulative mileage`,
				Action: statsAction,
				Flags:  []cli.Flag{yearFlag},
			},
			{
				Name:   "delete",
				Usage:  "Delete logged sessions in a date range",
				Action: deleteAction,
				Flags: []cli.Flag{
					startFlag,
					endFlag,
					typeFlag,
				},
			},
			{
				Name:   "serve",
				Usage:  "Start the dashboard and JSON API server",
				Action: serveAction,
				Flags:  []cli.Flag{serverPortFlag},
			},
			{
				Name:   "export",
				Usage:  "Export the full session log as CSV",
				Action: exportAction,
				Flags:  []cli.Flag{outputFlag},
			},
			{
				Name:      "import",
				Usage:     "Import sessions from a CSV export",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
	}

	return rowflowApp
}
