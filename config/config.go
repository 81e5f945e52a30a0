package config

import (
	"errors"
	"fmt"
	"os"

	"ludo/engine"
	"ludo/game"
	"ludo/meta"
	"ludo/policy"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var ErrUnknownBackend = errors.New("unknown backend")

type PlayerSettings struct {
	Policy   string `yaml:"policy"`
	Seed     uint64 `yaml:"seed"`      // Policy seed
	DiceSeed uint64 `yaml:"dice_seed"` // Seed of the seat's dice
}

type BenchmarkSettings struct {
	Games      int    `yaml:"games"`
	Parallel   int    `yaml:"parallel"`
	Seed       uint64 `yaml:"seed"`
	RecordsDir string `yaml:"records_dir"`
}

type Settings struct {
	Players   []PlayerSettings  `yaml:"players"` // Seats A to D
	Backend   string            `yaml:"backend"`
	TurnLimit int               `yaml:"turn_limit"`
	LogLevel  string            `yaml:"log_level"`
	Benchmark BenchmarkSettings `yaml:"benchmark"`
}

// Default is the mixed table: random, cycling, cycling, random.
func Default() Settings {
	return Settings{
		Players: []PlayerSettings{
			{Policy: policy.KindRandom.String(), Seed: meta.SeedA, DiceSeed: meta.DiceSeeds[game.SeatA]},
			{Policy: policy.KindCycling.String(), DiceSeed: meta.DiceSeeds[game.SeatB]},
			{Policy: policy.KindCycling.String(), DiceSeed: meta.DiceSeeds[game.SeatC]},
			{Policy: policy.KindRandom.String(), Seed: meta.SeedD, DiceSeed: meta.DiceSeeds[game.SeatD]},
		},
		Backend:   engine.Cooperative.String(),
		TurnLimit: meta.MaxTurns,
		LogLevel:  zerolog.LevelInfoValue,
		Benchmark: BenchmarkSettings{
			Games:      1000,
			Parallel:   1,
			Seed:       meta.BenchmarkSeed,
			RecordsDir: meta.RecordsDir,
		},
	}
}

// Load reads settings from a YAML file. Missing keys keep their defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

func Store(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports every problem at once.
func (s Settings) Validate() error {
	var err error
	if len(s.Players) != game.NumSeats {
		err = multierr.Append(err, fmt.Errorf("need %d players, got %d", game.NumSeats, len(s.Players)))
	}
	for i, p := range s.Players {
		if _, perr := policy.ParseKind(p.Policy); perr != nil {
			err = multierr.Append(err, fmt.Errorf("player %d: %w", i, perr))
		}
	}
	if _, berr := s.BackendValue(); berr != nil {
		err = multierr.Append(err, berr)
	}
	if s.TurnLimit < 0 {
		err = multierr.Append(err, fmt.Errorf("turn_limit must not be negative, got %d", s.TurnLimit))
	}
	if _, lerr := zerolog.ParseLevel(s.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("log_level: %w", lerr))
	}
	if s.Benchmark.Games < 0 {
		err = multierr.Append(err, fmt.Errorf("benchmark.games must not be negative, got %d", s.Benchmark.Games))
	}
	if s.Benchmark.Parallel < 0 {
		err = multierr.Append(err, fmt.Errorf("benchmark.parallel must not be negative, got %d", s.Benchmark.Parallel))
	}
	return err
}

func (s Settings) BackendValue() (engine.Backend, error) {
	b, ok := engine.ParseBackend(s.Backend)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, s.Backend)
	}
	return b, nil
}

// Level falls back to info when the configured level does not parse.
func (s Settings) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Policies builds a fresh policy for every seat.
func (s Settings) Policies() ([game.NumSeats]policy.Policy, error) {
	var policies [game.NumSeats]policy.Policy
	if len(s.Players) != game.NumSeats {
		return policies, fmt.Errorf("need %d players, got %d", game.NumSeats, len(s.Players))
	}
	for seat, p := range s.Players {
		kind, err := policy.ParseKind(p.Policy)
		if err != nil {
			return policies, err
		}
		policies[seat], err = policy.New(kind, p.Seed)
		if err != nil {
			return policies, err
		}
	}
	return policies, nil
}

func (s Settings) DiceSeeds() [game.NumSeats]uint64 {
	seeds := meta.DiceSeeds
	for seat, p := range s.Players {
		if seat < game.NumSeats {
			seeds[seat] = p.DiceSeed
		}
	}
	return seeds
}
