// Command chronicle inspects the run journal written by the demiurge binary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/veradun/demiurge/internal/chronicle"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dbPath := flag.String("db", "data/demiurge.db", "path to the chronicle database")
	runCount := flag.Int("runs", 10, "number of recent runs to list")
	runID := flag.String("run", "", "show the journaled events of one run")
	flag.Parse()

	db, err := chronicle.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open chronicle", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if *runID != "" {
		listEvents(db, *runID)
		return
	}
	listRuns(db, *runCount)
}

func listRuns(db *chronicle.DB, n int) {
	runs, err := db.RecentRuns(n)
	if err != nil {
		slog.Error("failed to list runs", "error", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("no runs journaled yet")
		return
	}

	fmt.Printf("%-36s  %-18s  %-20s  %s\n", "RUN", "STARTED", "OUTCOME", "FORECAST")
	for _, r := range runs {
		forecast := "-"
		if r.ForecastDays.Valid {
			forecast = humanize.Comma(r.ForecastDays.Int64) + " days"
		}
		fmt.Printf("%-36s  %-18s  %-20s  %s\n",
			r.ID, humanize.Time(r.Started()), r.Outcome, forecast)
	}
}

func listEvents(db *chronicle.DB, runID string) {
	events, err := db.Events(runID)
	if err != nil {
		slog.Error("failed to list events", "run", runID, "error", err)
		os.Exit(1)
	}
	if len(events) == 0 {
		fmt.Println("no events for run", runID)
		return
	}

	for _, e := range events {
		fmt.Printf("%3d  %s  %-12s  %s\n",
			e.Seq, e.Created().UTC().Format("2006-01-02 15:04:05"), e.Stage, e.Detail)
	}
}
