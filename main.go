package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/sim"
	"github.com/pthm-cable/flock/telemetry"
	"github.com/pthm-cable/flock/viewer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per frame (higher = faster headless runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	// Run output (disabled when -output-dir is empty)
	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to initialize output", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	simulation := sim.New(cfg, rng)
	collector := telemetry.NewCollector(cfg.Telemetry.StatsWindow, *logStats, out)

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"animals", cfg.World.Animals,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		steps := *stepsPerUpdate
		if steps < 1 {
			steps = 1
		}
		for {
			for i := 0; i < steps; i++ {
				simulation.Step()
			}
			if err := collector.Observe(simulation); err != nil {
				slog.Error("telemetry write failed", "error", err)
				os.Exit(1)
			}

			if *maxTicks > 0 && simulation.Tick() >= *maxTicks {
				slog.Info("max ticks reached", "tick", simulation.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Flock")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	v := viewer.New(simulation, cfg, viewer.Options{StepsPerUpdate: *stepsPerUpdate})

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()

		if err := collector.Observe(simulation); err != nil {
			slog.Error("telemetry write failed", "error", err)
			os.Exit(1)
		}

		if *maxTicks > 0 && simulation.Tick() >= *maxTicks {
			break
		}
	}
}
