package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

// renderCSV renders the artifact: one header row in source column order,
// then every record verbatim. Quoting and escaping are the encoder's
// problem; values with commas, quotes or newlines round-trip unchanged.
func renderCSV(columns []string, records []storage.FactRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
