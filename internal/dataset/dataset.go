// Package dataset supplies the immutable staff snapshot the UI renders.
// Records come from the embedded seed, a JSON file, or a read-only
// SQLite database; whichever source is used, the snapshot is loaded
// once at startup and never written afterwards.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/manishawhade/staff-directory/internal/model"
)

//go:embed seed.json
var seedJSON []byte

// Seed decodes the embedded sample dataset.
func Seed() ([]model.Record, error) {
	return decode(seedJSON)
}

// LoadFile reads a staff snapshot from a JSON file.
func LoadFile(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", path, err)
	}
	return records, nil
}

func decode(data []byte) ([]model.Record, error) {
	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}
