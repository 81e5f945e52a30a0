package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ludo/config"
	"ludo/engine"
	"ludo/experiments"
	"ludo/experiments/metrics"
	"ludo/policy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	benchmark := flag.Int("benchmark", 0, "Play this many all-random games and report timings")
	backend := flag.String("backend", "", "Turn backend: cooperative or threaded")
	parallel := flag.Int("parallel", 0, "Benchmark games run at once")
	records := flag.String("records", "", "Directory for benchmark CSV records")
	level := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load settings")
		}
	}
	if *backend != "" {
		settings.Backend = *backend
	}
	if *parallel > 0 {
		settings.Benchmark.Parallel = *parallel
	}
	if *records != "" {
		settings.Benchmark.RecordsDir = *records
	}
	if *level != "" {
		settings.LogLevel = *level
	}
	if err := settings.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	zerolog.SetGlobalLevel(settings.Level())

	if *benchmark > 0 {
		settings.Benchmark.Games = *benchmark
		runBenchmark(settings)
		return
	}
	runGame(settings)
}

func runGame(settings config.Settings) {
	backend, _ := settings.BackendValue()
	policies, err := settings.Policies()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build policies")
	}
	defer policy.Close(policies[:]...)

	e := engine.New(policies,
		engine.WithBackend(backend),
		engine.WithSeeds(settings.DiceSeeds()),
		engine.WithTurnLimit(settings.TurnLimit),
		engine.WithLogger(log.Logger),
	)
	res, err := e.Run()
	fmt.Println(res.Snapshot)
	if err != nil {
		log.Error().Err(err).Msgf("game %s stopped after %d turns", res.GameID, res.Turns)
		return
	}
	fmt.Printf("\n*** PLAYER %s HAS WON! ***\n", res.Winner)
	log.Info().Msgf("game %s took %d turns, %d moves, %v", res.GameID, res.Turns, res.Moves, res.Duration)
}

func runBenchmark(settings config.Settings) {
	backend, _ := settings.BackendValue()
	collector := metrics.NewPrometheusCollector()

	report, err := experiments.RunBenchmark(context.Background(), experiments.Benchmark{
		Games:      settings.Benchmark.Games,
		Parallel:   settings.Benchmark.Parallel,
		Backend:    backend,
		TurnLimit:  settings.TurnLimit,
		Seed:       settings.Benchmark.Seed,
		Collector:  collector,
		RecordsDir: settings.Benchmark.RecordsDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
	fmt.Print(report)

	if report.RecordsDir != "" {
		path := filepath.Join(report.RecordsDir, "metrics.prom")
		if err := collector.WriteTextfile(path); err != nil {
			log.Error().Err(err).Msg("failed to store metrics")
			return
		}
		log.Info().Msgf("stored metrics in %s", path)
	}
}
