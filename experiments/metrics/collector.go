package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type GameMetric struct {
	ID        string
	Backend   string
	Winner    string // Empty when the game was abandoned
	Turns     int
	Moves     int
	Captures  [4]int // Indexed by seat
	Duration  time.Duration
	Abandoned bool
}

type Collector interface {
	Record(m GameMetric)
}

var seatLabels = [4]string{"A", "B", "C", "D"}

// PrometheusCollector keeps per-game counters on its own registry, so several benchmarks can
// run in one process without clashing.
type PrometheusCollector struct {
	registry *prometheus.Registry

	games    *prometheus.CounterVec
	wins     *prometheus.CounterVec
	captures *prometheus.CounterVec
	turns    prometheus.Histogram
	duration prometheus.Histogram
}

func NewPrometheusCollector() *PrometheusCollector {
	c := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ludo",
			Name:      "games_total",
			Help:      "Games played, by outcome.",
		}, []string{"outcome"}),
		wins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ludo",
			Name:      "wins_total",
			Help:      "Games won, by seat.",
		}, []string{"seat"}),
		captures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ludo",
			Name:      "captures_total",
			Help:      "Pawns sent home, by capturing seat.",
		}, []string{"seat"}),
		turns: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ludo",
			Name:      "turns_per_game",
			Help:      "Turns taken per game, extra turns included.",
			Buckets:   prometheus.ExponentialBuckets(32, 2, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ludo",
			Name:      "game_duration_seconds",
			Help:      "Wall time per game.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	c.registry.MustRegister(c.games, c.wins, c.captures, c.turns, c.duration)
	return c
}

func (c *PrometheusCollector) Record(m GameMetric) {
	outcome := "won"
	if m.Abandoned {
		outcome = "abandoned"
	}
	c.games.WithLabelValues(outcome).Inc()
	if m.Winner != "" {
		c.wins.WithLabelValues(m.Winner).Inc()
	}
	for seat, n := range m.Captures {
		c.captures.WithLabelValues(seatLabels[seat]).Add(float64(n))
	}
	c.turns.Observe(float64(m.Turns))
	c.duration.Observe(m.Duration.Seconds())
}

// Registry exposes the collector's metrics, e.g. for gathering or an HTTP handler.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile stores the current values in the Prometheus text format.
func (c *PrometheusCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Record(GameMetric) {}
