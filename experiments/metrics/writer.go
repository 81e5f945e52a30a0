package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	Index int // Position of the game in its benchmark
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the given timestamp.
func NewWriter(root string, now time.Time) (*Writer, error) {
	baseDir := filepath.Join(root, now.UTC().Format("20060102T150405Z"))
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"index", "id", "backend", "winner", "turns", "moves",
		"captures_a", "captures_b", "captures_c", "captures_d", "abandoned", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Index),
			record.ID,
			record.Backend,
			record.Winner,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Captures[0]),
			strconv.Itoa(record.Captures[1]),
			strconv.Itoa(record.Captures[2]),
			strconv.Itoa(record.Captures[3]),
			strconv.FormatBool(record.Abandoned),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
