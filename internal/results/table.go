package results

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"partbench/internal/apperr"
)

var tableHeader = []string{"graph", "k", "runtime_seconds", "memory_bytes", "edge_cut", "cut_ratio"}

// floatDecimals is the fixed precision for persisted floats, so re-runs with
// unchanged results produce byte-identical tables.
const floatDecimals = 6

// readTable loads the result table at path. A missing file is an empty
// table; a file that exists but does not match the table schema is an I/O
// failure, never silently treated as empty.
func readTable(path string) ([]MetricRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, apperr.NewIO("read result table", path, err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, apperr.NewIO("parse result table", path, err)
	}
	if len(rows) == 0 {
		return nil, apperr.NewIO("parse result table", path, errors.New("missing header row"))
	}
	if !equalHeader(rows[0]) {
		return nil, apperr.NewIO("parse result table", path, fmt.Errorf("unexpected header %v", rows[0]))
	}

	records := make([]MetricRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := decodeRow(row)
		if err != nil {
			return nil, apperr.NewIO("parse result table", path, fmt.Errorf("row %d: %w", i+1, err))
		}
		records = append(records, rec)
	}
	return records, nil
}

func equalHeader(row []string) bool {
	if len(row) != len(tableHeader) {
		return false
	}
	for i, col := range tableHeader {
		if row[i] != col {
			return false
		}
	}
	return true
}

func decodeRow(row []string) (MetricRecord, error) {
	if len(row) != len(tableHeader) {
		return MetricRecord{}, fmt.Errorf("expected %d columns, got %d", len(tableHeader), len(row))
	}
	k, err := strconv.Atoi(row[1])
	if err != nil {
		return MetricRecord{}, fmt.Errorf("column k: %w", err)
	}
	runtime, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return MetricRecord{}, fmt.Errorf("column runtime_seconds: %w", err)
	}
	memory, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return MetricRecord{}, fmt.Errorf("column memory_bytes: %w", err)
	}
	edgeCut, err := strconv.ParseUint(row[4], 10, 64)
	if err != nil {
		return MetricRecord{}, fmt.Errorf("column edge_cut: %w", err)
	}
	ratio, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return MetricRecord{}, fmt.Errorf("column cut_ratio: %w", err)
	}
	return MetricRecord{
		Graph:          row[0],
		K:              k,
		RuntimeSeconds: runtime,
		MemoryBytes:    memory,
		EdgeCut:        edgeCut,
		CutRatio:       ratio,
	}, nil
}

// encodeTable renders records as CSV with the fixed column order. Algorithm
// and params are carried by the table path, not repeated per row.
func encodeTable(records []MetricRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(tableHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Graph,
			strconv.Itoa(rec.K),
			strconv.FormatFloat(rec.RuntimeSeconds, 'f', floatDecimals, 64),
			strconv.FormatInt(rec.MemoryBytes, 10),
			strconv.FormatUint(rec.EdgeCut, 10),
			strconv.FormatFloat(rec.CutRatio, 'f', floatDecimals, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
