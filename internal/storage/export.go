package storage

import (
	"encoding/json"
	"io"
	"math"
	"os"
)

// ExportData is a run and its data as a single JSON document. Non-finite
// cells export as null.
type ExportData struct {
	RunMetadata
	Data [][]*float64 `json:"data"`
}

func (s *Store) exportData(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	table, err := s.LoadTable(runID)
	if err != nil {
		return nil, err
	}

	data := &ExportData{RunMetadata: *meta, Data: make([][]*float64, len(table.Rows))}
	for i, row := range table.Rows {
		data.Data[i] = make([]*float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			data.Data[i][j] = &v
		}
	}
	return data, nil
}

// Export writes the run as indented JSON to w.
func (s *Store) Export(runID string, w io.Writer) error {
	data, err := s.exportData(runID)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSON writes the run as JSON to path.
func (s *Store) ExportJSON(runID, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.Export(runID, file)
}
