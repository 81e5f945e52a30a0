package experiments

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"ludo/engine"
	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/policy"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

// Benchmark plays many independent all-random games.
type Benchmark struct {
	Games     int
	Parallel  int // Games run at once; 1 or less runs them one after another
	Backend   engine.Backend
	TurnLimit int
	Seed      uint64 // Every game's seeds derive from it

	Clock      clock.Clock       // Defaults to the wall clock
	Collector  metrics.Collector // Defaults to a no-op collector
	RecordsDir string            // Empty skips the CSV records
}

type outcome struct {
	index  int
	result engine.Result
}

// RunBenchmark plays the games and summarizes them. Games abandoned at the turn limit are
// counted, any other failure stops the benchmark.
func RunBenchmark(ctx context.Context, bm Benchmark) (Report, error) {
	if bm.Games <= 0 {
		return Report{}, fmt.Errorf("benchmark needs at least one game, got %d", bm.Games)
	}
	if bm.Clock == nil {
		bm.Clock = clock.New()
	}
	if bm.Collector == nil {
		bm.Collector = metrics.NewDummyCollector()
	}
	parallel := max(bm.Parallel, 1)

	log.Info().Msgf("running %d games on the %s backend, %d at a time...", bm.Games, bm.Backend, parallel)

	p := pool.NewWithResults[outcome]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(parallel)

	start := bm.Clock.Now()
	for i := 0; i < bm.Games; i++ {
		p.Go(func(ctx context.Context) (outcome, error) {
			return bm.play(ctx, i)
		})
	}
	outcomes, err := p.Wait()
	total := bm.Clock.Since(start)
	if err != nil {
		return Report{}, err
	}

	slices.SortFunc(outcomes, func(a, b outcome) int {
		return a.index - b.index
	})
	report, err := summarize(outcomes, total)
	if err != nil {
		return Report{}, err
	}
	log.Info().Msgf("completed %d games in %s", report.Games, report.Total)

	if bm.RecordsDir != "" {
		dir, err := writeRecords(bm.RecordsDir, bm.Clock.Now(), outcomes)
		if err != nil {
			return report, err
		}
		report.RecordsDir = dir
		log.Info().Msgf("stored game records in %s", dir)
	}
	return report, nil
}

func (bm Benchmark) play(ctx context.Context, index int) (outcome, error) {
	rng := rand.New(rand.NewPCG(bm.Seed, uint64(index)))
	var policies [game.NumSeats]policy.Policy
	var seeds [game.NumSeats]uint64
	for _, seat := range game.Seats() {
		policies[seat] = policy.NewRandom(rng.Uint64())
		seeds[seat] = rng.Uint64()
	}

	e := engine.New(policies,
		engine.WithBackend(bm.Backend),
		engine.WithSeeds(seeds),
		engine.WithTurnLimit(bm.TurnLimit),
		engine.WithCollector(bm.Collector),
		engine.WithClock(bm.Clock),
	)
	res, err := e.RunContext(ctx)
	if err != nil && !errors.Is(err, engine.ErrTurnLimit) {
		return outcome{}, fmt.Errorf("game %d: %w", index, err)
	}
	return outcome{index: index, result: res}, nil
}

func writeRecords(root string, now time.Time, outcomes []outcome) (string, error) {
	writer, err := metrics.NewWriter(root, now)
	if err != nil {
		return "", fmt.Errorf("failed to create records writer: %w", err)
	}
	records := make([]metrics.GameRecord, len(outcomes))
	for i, o := range outcomes {
		records[i] = metrics.GameRecord{Index: o.index, GameMetric: o.result.Metric()}
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return "", err
	}
	return writer.Dir(), nil
}
