package app

import (
	"fmt"
	"io"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/internal/ui"
	"github.com/oarlock/rowflow/stats"
)

const barChartChar = "▇"

// printYearSummary renders the yearly totals, the per-type breakdown, and
// a monthly mileage bar chart.
func printYearSummary(
	w io.Writer,
	records []models.Record,
	yearly *stats.YearlyTableResult,
	monthly *stats.MonthlyTotalsResult,
) {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Training year: %d", yearly.Year)

	fmt.Fprint(w, header)

	var totalKM, totalMin float64

	for i := range records {
		totalKM += records[i].DistanceKM
		totalMin += records[i].DurationMin
	}

	timeOnWater := durafmt.Parse(
		time.Duration(totalMin) * time.Minute,
	).LimitFirstN(2)

	fmt.Fprintf(w, "%s\n", ui.Blue("Summary"))
	fmt.Fprintf(w, "Distance logged: %s\n", ui.Green(fmt.Sprintf("%.2f km", totalKM)))
	fmt.Fprintf(w, "Time logged: %s\n", ui.Green(timeOnWater))
	fmt.Fprintf(w, "Sessions: %s\n", ui.Green(len(records)))

	fmt.Fprintf(w, "\n%s\n", ui.Blue("Totals by session type"))

	for _, t := range monthly.SessionTypes {
		var km float64
		for _, byType := range monthly.Totals {
			km += byType[t]
		}

		fmt.Fprintf(w, "%s: %s\n", t, ui.Green(fmt.Sprintf("%.2f km", km)))
	}

	fmt.Fprintln(w, getMonthlyChart(monthly))
}

// getMonthlyChart renders distance per month as a horizontal bar chart.
func getMonthlyChart(monthly *stats.MonthlyTotalsResult) string {
	header := ui.Blue("\nMonthly breakdown (km)")

	var bars pterm.Bars

	for m := 1; m <= 12; m++ {
		key := fmt.Sprintf("%02d", m)

		var km float64
		for _, v := range monthly.Totals[key] {
			km += v
		}

		bars = append(bars, pterm.Bar{
			Value: int(km + 0.5),
			Label: time.Month(m).String(),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}
