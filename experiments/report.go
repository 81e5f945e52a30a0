package experiments

import (
	"fmt"
	"strings"
	"time"

	"ludo/game"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
)

type Report struct {
	Games     int
	Abandoned int // Stopped at the turn limit
	Wins      [game.NumSeats]int

	Total  time.Duration
	Mean   time.Duration // Per game
	Median time.Duration
	P95    time.Duration

	MeanTurns  float64
	RecordsDir string
}

func summarize(outcomes []outcome, total time.Duration) (Report, error) {
	r := Report{Games: len(outcomes), Total: total}

	durations := make(stats.Float64Data, 0, len(outcomes))
	turns := make(stats.Float64Data, 0, len(outcomes))
	for _, o := range outcomes {
		durations = append(durations, float64(o.result.Duration))
		turns = append(turns, float64(o.result.Turns))
		if o.result.HasWinner {
			r.Wins[o.result.Winner]++
		} else {
			r.Abandoned++
		}
	}

	mean, err := stats.Mean(durations)
	if err != nil {
		return r, fmt.Errorf("mean duration: %w", err)
	}
	median, err := stats.Median(durations)
	if err != nil {
		return r, fmt.Errorf("median duration: %w", err)
	}
	p95, err := stats.Percentile(durations, 95)
	if err != nil {
		return r, fmt.Errorf("95th percentile duration: %w", err)
	}
	r.MeanTurns, err = stats.Mean(turns)
	if err != nil {
		return r, fmt.Errorf("mean turns: %w", err)
	}
	r.Mean, r.Median, r.P95 = time.Duration(mean), time.Duration(median), time.Duration(p95)
	return r, nil
}

// GamesPerSecond is zero when no time was measured.
func (r Report) GamesPerSecond() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Games) / r.Total.Seconds()
}

func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString("=== Benchmark Results ===\n")
	fmt.Fprintf(&sb, "Total games:    %s\n", humanize.Comma(int64(r.Games)))
	fmt.Fprintf(&sb, "Abandoned:      %s\n", humanize.Comma(int64(r.Abandoned)))
	fmt.Fprintf(&sb, "Total time:     %s ms\n", humanize.Comma(r.Total.Milliseconds()))
	fmt.Fprintf(&sb, "Average time:   %s ms/game\n", humanize.CommafWithDigits(ms(r.Mean), 3))
	fmt.Fprintf(&sb, "Median time:    %s ms/game\n", humanize.CommafWithDigits(ms(r.Median), 3))
	fmt.Fprintf(&sb, "P95 time:       %s ms/game\n", humanize.CommafWithDigits(ms(r.P95), 3))
	fmt.Fprintf(&sb, "Games per sec:  %s games/s\n", humanize.CommafWithDigits(r.GamesPerSecond(), 2))
	fmt.Fprintf(&sb, "Average turns:  %s\n", humanize.CommafWithDigits(r.MeanTurns, 1))
	for _, seat := range game.Seats() {
		fmt.Fprintf(&sb, "Wins %s:         %s\n", seat, humanize.Comma(int64(r.Wins[seat])))
	}
	return sb.String()
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
