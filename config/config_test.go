package config

import (
	"os"
	"path/filepath"
	"testing"

	"ludo/engine"
	"ludo/policy"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())

	policies, err := s.Policies()
	require.NoError(t, err)
	require.IsType(t, &policy.Random{}, policies[0])
	require.IsType(t, &policy.Cycling{}, policies[1])
	require.IsType(t, &policy.Cycling{}, policies[2])
	require.IsType(t, &policy.Random{}, policies[3])

	backend, err := s.BackendValue()
	require.NoError(t, err)
	require.Equal(t, engine.Cooperative, backend)
	require.Equal(t, zerolog.InfoLevel, s.Level())
}

func TestLoad(t *testing.T) {
	t.Run("overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ludo.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
backend: threaded
log_level: debug
benchmark:
  games: 50
  parallel: 8
`), 0644))

		s, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "threaded", s.Backend)
		require.Equal(t, zerolog.DebugLevel, s.Level())
		require.Equal(t, 50, s.Benchmark.Games)
		require.Equal(t, 8, s.Benchmark.Parallel)
		require.Equal(t, Default().Players, s.Players)
		require.Equal(t, Default().TurnLimit, s.TurnLimit)
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ludo.yaml")
		s := Default()
		s.Players[1] = PlayerSettings{Policy: "random", Seed: 5, DiceSeed: 6}
		s.TurnLimit = 0

		require.NoError(t, Store(path, s))
		loaded, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, s, loaded)
		require.Equal(t, uint64(6), loaded.DiceSeeds()[1])
	})

	t.Run("reports every problem", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ludo.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
players:
  - policy: random
  - policy: greedy
backend: fibers
turn_limit: -1
`), 0644))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrUnknownBackend)
		require.ErrorIs(t, err, policy.ErrUnknownKind)

		s := Settings{
			Players:   []PlayerSettings{{Policy: "random"}, {Policy: "greedy"}},
			Backend:   "fibers",
			TurnLimit: -1,
			LogLevel:  "loud",
		}
		require.Len(t, multierr.Errors(s.Validate()), 5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
