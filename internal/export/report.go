package export

import (
	"fmt"
	"os"

	"ai-trip-planner/internal/trip"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"
)

// WriteReport generates an HTML report with a bar chart of scheduled minutes
// per day, split into activity and break time.
func WriteReport(it trip.Itinerary, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("Trip report: %s", it.Destination),
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Trip to %s", titleCaser.String(it.Destination)),
			Subtitle: fmt.Sprintf("%d days, %d unplaced, %d warnings", len(it.Days), len(it.Overflow), len(it.Warnings)),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	labels := lo.Map(it.Days, func(d trip.DayPlan, _ int) string {
		return d.Date.Format("Mon Jan 2")
	})

	activity := lo.Map(it.Days, func(d trip.DayPlan, _ int) opts.BarData {
		total := 0
		for _, item := range d.Items {
			if !item.IsBreak() {
				total += item.DurationMinutes
			}
		}
		return opts.BarData{Value: total}
	})
	breaks := lo.Map(it.Days, func(d trip.DayPlan, _ int) opts.BarData {
		total := 0
		for _, item := range d.Items {
			if item.IsBreak() {
				total += item.DurationMinutes
			}
		}
		return opts.BarData{Value: total}
	})

	bar.SetXAxis(labels).
		AddSeries("Activity minutes", activity).
		AddSeries("Break minutes", breaks).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "day"}))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
