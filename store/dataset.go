package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"brushplot/models"
)

const READ_BUFFER_SIZE = 1 << 20

// LoadRecords reads a JSON array of objects from path. Numbers are kept as written so coercion sees the raw text.
// An empty path gives the built in cars.
func LoadRecords(path string, log zerolog.Logger) ([]models.Record, error) {
	if path == "" {
		return Cars, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("couldn't close file")
		}
	}(file)

	decoder := json.NewDecoder(bufio.NewReaderSize(file, READ_BUFFER_SIZE))
	decoder.UseNumber()

	var records []models.Record
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("couldn't decode records from %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("records", len(records)).Msg("loaded records")

	return records, nil
}
