package app

import "github.com/urfave/cli/v2"

var (
	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Date of the session (e.g. '2024-03-01', 'yesterday'). Defaults to today",
	}

	distanceFlag = &cli.Float64Flag{
		Name:  "distance",
		Usage: "Distance covered in kilometres",
	}

	durationFlag = &cli.Float64Flag{
		Name:  "duration",
		Usage: "Session duration in minutes",
	}

	splitFlag = &cli.StringFlag{
		Name:  "split",
		Usage: "Average 500m split as M:SS.s (e.g. 2:05.3). Derived when distance and duration are given",
	}

	typeFlag = &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "Session type: Water, Erg, Cross-Training, Strength, or Other",
	}

	notesFlag = &cli.StringFlag{
		Name:    "notes",
		Aliases: []string{"n"},
		Usage:   "Free-form notes for the session",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Only include sessions on or after this date",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Only include sessions on or before this date",
	}

	yearFlag = &cli.StringFlag{
		Name:    "year",
		Aliases: []string{"y"},
		Usage:   "Reporting year (four digits). Defaults to the current year",
	}

	serverPortFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the dashboard server",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the CSV export to this file instead of standard output",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
