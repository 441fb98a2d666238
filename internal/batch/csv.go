package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadTicketIDs reads ticket IDs from the first column of a CSV file. The
// first row is a header and is skipped. Values are trimmed; rows whose
// first column is empty after trimming are dropped. Order follows the file.
func LoadTicketIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("csv file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to open csv file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Header row is required.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("csv file %s is empty", path)
		}
		return nil, fmt.Errorf("failed to read csv header from %s: %w", path, err)
	}

	var ids []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row from %s: %w", path, err)
		}
		if len(row) == 0 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
