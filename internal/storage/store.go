package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownColumn is returned by LoadValues for a column the run lacks.
var ErrUnknownColumn = errors.New("storage: unknown column")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Kind       string             `json:"kind"`
	Observable string             `json:"observable"`
	Options    map[string]string  `json:"options,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       uint64             `json:"seed,omitempty"`
	Workers    int                `json:"workers,omitempty"`
	Parameters map[string]float64 `json:"parameters"`
	Summary    map[string]float64 `json:"summary,omitempty"`
	Columns    []string           `json:"columns"`
	Rows       int                `json:"rows"`
}

// Table holds one run's data, one row per sample or grid point.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	j := slices.Index(t.Columns, name)
	if j < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if j < len(row) {
			out = append(out, row[j])
		}
	}
	return out, nil
}

func newRunID(kind string) string {
	return fmt.Sprintf("%s_%d_%s", kind, time.Now().Unix(), uuid.NewString()[:8])
}

// Save writes metadata.json and data.csv under a fresh run directory and
// returns the run id. meta.ID, Kind, Timestamp, Columns and Rows are filled
// in from kind and table.
func (s *Store) Save(kind string, meta RunMetadata, table Table) (string, error) {
	runID := newRunID(kind)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Kind = kind
	meta.Timestamp = time.Now()
	meta.Columns = table.Columns
	meta.Rows = len(table.Rows)
	// JSON has no encoding for NaN or Inf
	meta.Summary = finite(meta.Summary)
	meta.Parameters = finite(meta.Parameters)

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "data.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(table.Columns); err != nil {
		return "", err
	}
	for _, r := range table.Rows {
		row := make([]string, len(r))
		for i, val := range r {
			row[i] = strconv.FormatFloat(val, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

func finite(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[k] = v
		}
	}
	return out
}

// List returns all readable runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	slices.SortFunc(runs, func(a, b RunMetadata) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTable reads a run's data.csv. Unparseable cells read as NaN.
func (s *Store) LoadTable(runID string) (*Table, error) {
	csvPath := filepath.Join(s.baseDir, runID, "data.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return &Table{}, nil
	}

	t := &Table{Columns: records[0], Rows: make([][]float64, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				v = math.NaN()
			}
			row[j] = v
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// LoadValues reads one column of a run's data.
func (s *Store) LoadValues(runID, column string) ([]float64, error) {
	t, err := s.LoadTable(runID)
	if err != nil {
		return nil, err
	}
	return t.Column(column)
}
