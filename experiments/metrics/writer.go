package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAdvisorConfigs(configs []AdvisorConfig) error {
	path := filepath.Join(w.baseDir, "advisor_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create advisor configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"id", "name", "mode"}); err != nil {
		return fmt.Errorf("failed to write advisor configs header: %w", err)
	}
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Name,
			config.Mode,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write advisor config row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	path := filepath.Join(w.baseDir, "turns.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turns file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "turn", "advisor", "score", "points", "busted"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write turns header: %w", err)
	}
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			record.Advisor,
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Points),
			strconv.FormatBool(record.Busted),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write turn row: %w", err)
		}
	}
	return nil
}
