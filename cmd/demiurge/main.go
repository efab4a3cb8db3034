// Command demiurge runs one complete world lifecycle: genesis, inhabitants,
// a miracle, an answered prayer, the end-of-world forecast, completion, and
// teardown. Every stage is journaled to the chronicle when one is configured.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/veradun/demiurge/internal/chronicle"
	"github.com/veradun/demiurge/internal/config"
	"github.com/veradun/demiurge/internal/cosmology"
	"github.com/veradun/demiurge/internal/cosmos"
	"github.com/veradun/demiurge/internal/prayer"
	"github.com/veradun/demiurge/internal/resource"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	slog.Info("DEMIURGE / World Lifecycle")
	slog.Info("physical constants",
		"c", cosmology.SpeedOfLight,
		"h", cosmology.Planck,
		"G", cosmology.Gravitational,
		"epsilon0", cosmology.VacuumPermittivity,
	)

	// ── Chronicle ─────────────────────────────────────────────────────
	var db *chronicle.DB
	var rec *chronicle.Recorder
	if cfg.ChroniclePath != "" {
		os.MkdirAll(filepath.Dir(cfg.ChroniclePath), 0755)
		db, err = chronicle.Open(cfg.ChroniclePath)
		if err != nil {
			slog.Warn("chronicle disabled", "path", cfg.ChroniclePath, "error", err)
		} else if rec, err = db.StartRun(); err != nil {
			slog.Warn("chronicle disabled", "error", err)
			rec = nil
		} else {
			slog.Info("chronicle opened", "path", cfg.ChroniclePath, "run", rec.RunID())
		}
	}

	// ── Genesis ───────────────────────────────────────────────────────
	pool := resource.NewPool()
	d := cosmos.NewDeity(pool)
	d.Genesis = cfg.Genesis()

	if !d.Exists() {
		return
	}

	w, err := d.CreateWorld()
	if err != nil {
		fail(rec, db, "genesis", err)
	}
	slog.Info("world created",
		"constants", w.Constants.Len(),
		"lifespan_days", w.TotalLifespanDays,
		"entropy", fmt.Sprintf("%.3f", w.EntropyLevel),
	)
	rec.Event("genesis", fmt.Sprintf("world with %d constants, lifespan %s days",
		w.Constants.Len(), humanize.Comma(w.TotalLifespanDays)))

	// ── Inhabitants ───────────────────────────────────────────────────
	for _, name := range cfg.Inhabitants {
		e, err := w.AddEntity(name)
		if err != nil {
			fail(rec, db, "inhabitant", err)
		}
		slog.Info("inhabitant added",
			"id", e.ID,
			"name", e.Name.String(),
			"consciousness", fmt.Sprintf("%.3f", e.Consciousness.Value()),
			"free_will", fmt.Sprintf("%.3f", e.FreeWill.Value()),
		)
		rec.Event("inhabitant", e.Name.String())
	}
	first := w.Entities[0]
	slog.Info("love extended", "toward", first.Name.String(), "magnitude", d.Love(first))

	// ── Miracle ───────────────────────────────────────────────────────
	blessed, err := d.PerformMiracle(w)
	if err != nil {
		fail(rec, db, "miracle", err)
	}
	slog.Info("miracle performed", "entropy", fmt.Sprintf("%.6f", blessed.EntropyLevel))
	rec.Event("miracle", fmt.Sprintf("entropy %.6f", blessed.EntropyLevel))

	// ── Prayer ────────────────────────────────────────────────────────
	text := prayer.Compose(first.Name.String())
	slog.Info("prayer heard", "from", first.Name.String(), "text", text)

	answered, err := d.AnswerPrayer(w, first, text)
	if err != nil {
		fail(rec, db, "prayer", err)
	}
	slog.Info("prayer answered",
		"entropy", fmt.Sprintf("%.6f", answered.EntropyLevel),
		"lifespan_days", answered.TotalLifespanDays,
	)
	rec.Event("prayer", text)

	// ── Forecast ──────────────────────────────────────────────────────
	days := d.Forecast(answered)
	slog.Info("forecast computed", "days_remaining", days)
	rec.Event("forecast", fmt.Sprintf("%s days remaining", humanize.Comma(days)))

	// ── Completion ────────────────────────────────────────────────────
	completed, err := d.CompleteWorld(answered)
	if err != nil {
		fail(rec, db, "completion", err)
	}
	slog.Info("world completed", "entropy", fmt.Sprintf("%.3f", completed.EntropyLevel))
	rec.Event("completion", fmt.Sprintf("entropy %.3f", completed.EntropyLevel))

	// ── Teardown ──────────────────────────────────────────────────────
	completed.Destroy()
	answered.Destroy()
	blessed.Destroy()
	w.Destroy()
	slog.Info("worlds destroyed", "live_allocations", pool.Live())
	rec.Event("teardown", fmt.Sprintf("%d live allocations", pool.Live()))

	rec.Finish("complete", days)
	db.Close()

	fmt.Printf("\nThe end of the world arrives in %s days.\n", humanize.Comma(days))
	fmt.Println("All worlds returned to the void.")
}

// fail journals the failed stage, closes the chronicle, and exits nonzero.
func fail(rec *chronicle.Recorder, db *chronicle.DB, stage string, err error) {
	slog.Error(stage+" failed", "error", err)
	rec.Finish("failed: "+stage, -1)
	db.Close()
	os.Exit(1)
}
