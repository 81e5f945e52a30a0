package meta

// MaxTurns is the default turn limit after which a game is abandoned.
const MaxTurns = 10000

// DiceSeeds seed the seats' dice when nothing else is configured.
var DiceSeeds = [4]uint64{1, 2, 3, 4}

// Seeds of the default mixed game.
const (
	SeedA = 42
	SeedD = 123
)

// BenchmarkSeed derives every seed of a benchmark run.
const BenchmarkSeed = 2024

// RecordsDir is where benchmark CSV records go unless configured otherwise.
const RecordsDir = "experiments/records"
