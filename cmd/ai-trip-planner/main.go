package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"ai-trip-planner/internal/app"
	"ai-trip-planner/internal/config"
	"ai-trip-planner/internal/export"
	"ai-trip-planner/internal/trip"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, cleanup, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "plan":
		runPlan(ctx, application)
	case "refine":
		runRefine(ctx, application)
	case "export":
		runExport(ctx, application)
	case "report":
		runReport(ctx, application)
	case "list":
		runList(ctx, application)
	case "metrics-usage":
		runMetricsUsage(application)
	case "metrics-cleanup":
		runMetricsCleanup(application)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runPlan(ctx context.Context, application *app.App) {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	dest := planCmd.String("dest", "", "Destination name")
	lat := planCmd.Float64("lat", 0, "Destination latitude")
	lon := planCmd.Float64("lon", 0, "Destination longitude")
	start := planCmd.String("start", "", "Trip start date (YYYY-MM-DD)")
	days := planCmd.Int("days", 3, "Trip duration in days")
	group := planCmd.String("group", "solo", "Group type: solo, family, friends, couple, business")
	interests := planCmd.String("interests", "", "Comma-separated interests")
	budget := planCmd.String("budget", "", "Budget range: budget, moderate, luxury")
	planCmd.Parse(os.Args[2:])

	if *dest == "" || *start == "" {
		log.Fatal("plan requires -dest and -start")
	}
	startDate, err := time.Parse("2006-01-02", *start)
	if err != nil {
		log.Fatalf("Invalid -start date: %v", err)
	}

	req := trip.TripRequest{
		Destination:  *dest,
		Coordinates:  trip.Coordinates{Latitude: *lat, Longitude: *lon},
		StartDate:    startDate,
		DurationDays: *days,
		Group:        trip.GroupType(*group),
		BudgetRange:  *budget,
	}
	if *interests != "" {
		req.Interests = strings.Split(*interests, ",")
	}

	itinerary, err := application.PlanTrip(ctx, req)
	if err != nil {
		log.Fatalf("Planning failed: %v", err)
	}
	printItinerary(itinerary)
}

func runRefine(ctx context.Context, application *app.App) {
	refineCmd := flag.NewFlagSet("refine", flag.ExitOnError)
	id := refineCmd.String("id", "", "Itinerary id to refine")
	refineCmd.Parse(os.Args[2:])

	if *id == "" {
		log.Fatal("refine requires -id")
	}

	itinerary, err := application.RefineItinerary(ctx, *id)
	if err != nil {
		log.Fatalf("Refine failed: %v", err)
	}
	printItinerary(itinerary)
}

func runExport(ctx context.Context, application *app.App) {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	id := exportCmd.String("id", "", "Itinerary id to export")
	format := exportCmd.String("format", "json", "Export format: json or ical")
	out := exportCmd.String("out", ".", "Output file or directory")
	exportCmd.Parse(os.Args[2:])

	if *id == "" {
		log.Fatal("export requires -id")
	}

	itinerary, err := application.GetItinerary(ctx, *id)
	if err != nil {
		log.Fatalf("Failed to load itinerary: %v", err)
	}

	switch *format {
	case "json":
		path, err := export.WriteJSONFile(*itinerary, *out)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Itinerary written to %s\n", path)
	case "ical":
		if err := export.WriteICalFile(*itinerary, *out); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Calendar written to %s\n", *out)
	default:
		log.Fatalf("Unknown export format %q", *format)
	}
}

func runReport(ctx context.Context, application *app.App) {
	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)
	id := reportCmd.String("id", "", "Itinerary id to report on")
	out := reportCmd.String("out", "trip-report.html", "Output HTML file")
	reportCmd.Parse(os.Args[2:])

	if *id == "" {
		log.Fatal("report requires -id")
	}

	itinerary, err := application.GetItinerary(ctx, *id)
	if err != nil {
		log.Fatalf("Failed to load itinerary: %v", err)
	}
	if err := export.WriteReport(*itinerary, *out); err != nil {
		log.Fatalf("Report generation failed: %v", err)
	}
	fmt.Printf("Report written to %s\n", *out)
}

func runList(ctx context.Context, application *app.App) {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	limit := listCmd.Int("limit", 10, "Number of itineraries to show")
	listCmd.Parse(os.Args[2:])

	itineraries, err := application.ListRecentItineraries(ctx, *limit)
	if err != nil {
		log.Fatalf("List failed: %v", err)
	}
	for _, it := range itineraries {
		fmt.Printf("%s  v%d  %-20s  %d days\n", it.ID, it.Version, it.Destination, len(it.Days))
	}
}

func runMetricsUsage(application *app.App) {
	usageCmd := flag.NewFlagSet("metrics-usage", flag.ExitOnError)
	days := usageCmd.Int("days", 7, "Number of days to report")
	usageCmd.Parse(os.Args[2:])

	usage, err := application.DailyUsage(*days)
	if err != nil {
		log.Fatalf("Usage report failed: %v", err)
	}
	for _, u := range usage {
		fmt.Printf("%s  prompt=%d completion=%d calls=%d\n", u.Date, u.TotalPrompt, u.TotalCompletion, u.TotalExecution)
	}
}

func runMetricsCleanup(application *app.App) {
	cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
	days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
	cleanupCmd.Parse(os.Args[2:])

	affected, err := application.CleanupMetrics(*days)
	if err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
	fmt.Printf("Successfully removed %d old metric records.\n", affected)
}

func printItinerary(it *trip.Itinerary) {
	fmt.Printf("Itinerary %s (v%d) for %s\n", it.ID, it.Version, it.Destination)
	for _, day := range it.Days {
		fmt.Printf("\n%s\n", day.Date.Format("Monday, Jan 2 2006"))
		if len(day.Items) == 0 {
			fmt.Println("  (free day)")
			continue
		}
		for _, item := range day.Items {
			fmt.Printf("  %s - %s  %s", item.Start.Format("15:04"), item.End.Format("15:04"), item.Name)
			if item.Note != "" {
				fmt.Printf("  [%s]", item.Note)
			}
			fmt.Println()
		}
	}
	if len(it.Overflow) > 0 {
		fmt.Printf("\nUnplaced: %s\n", strings.Join(it.Overflow, ", "))
	}
	for _, w := range it.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
}

func printUsage() {
	fmt.Println("Usage: ai-trip-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan               Build a new itinerary for a destination")
	fmt.Println("  refine             Rebuild a stored itinerary (bumps version)")
	fmt.Println("  export             Export a stored itinerary as JSON or iCal")
	fmt.Println("  report             Generate an HTML report for an itinerary")
	fmt.Println("  list               Show recently updated itineraries")
	fmt.Println("  metrics-usage      Show advisor token usage per day")
	fmt.Println("  metrics-cleanup    Remove old metric records")
}
