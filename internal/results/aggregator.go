package results

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"

	"partbench/internal/apperr"
)

// MergePolicy decides what happens when a record's row identity already
// exists in the target table.
type MergePolicy int

const (
	// SkipExisting leaves the table untouched and reports the record as
	// skipped. This is the default.
	SkipExisting MergePolicy = iota
	// Overwrite replaces the existing row in place, preserving row order.
	Overwrite
)

// MergeOutcome reports what Merge did with the record.
type MergeOutcome int

const (
	Appended MergeOutcome = iota
	Replaced
	Skipped
)

func (o MergeOutcome) String() string {
	switch o {
	case Appended:
		return "appended"
	case Replaced:
		return "replaced"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// tableLocks serializes merges per table path within this process.
var tableLocks sync.Map // string -> *sync.Mutex

func lockFor(tablePath string) *sync.Mutex {
	mu, _ := tableLocks.LoadOrStore(tablePath, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Merge loads the table at tablePath, merges the record per policy, and
// writes the whole table back atomically (temp file + rename), so a crash
// mid-write leaves either the old or the new complete table. The
// load-merge-write cycle holds an exclusive file lock next to the table, so
// concurrent experiment drivers targeting the same table cannot lose updates.
func Merge(tablePath string, rec MetricRecord, policy MergePolicy) (MergeOutcome, error) {
	mu := lockFor(tablePath)
	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Dir(tablePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Skipped, apperr.NewIO("create table directory", dir, err)
	}

	fl := flock.New(tablePath + ".lock")
	if err := fl.Lock(); err != nil {
		return Skipped, apperr.NewIO("lock result table", tablePath, err)
	}
	defer fl.Unlock()

	records, err := readTable(tablePath)
	if err != nil {
		return Skipped, err
	}

	id := rec.RowID()
	idx := -1
	for i := range records {
		if records[i].RowID() == id {
			idx = i
			break
		}
	}

	outcome := Appended
	switch {
	case idx < 0:
		records = append(records, rec)
	case policy == Overwrite:
		records[idx] = rec
		outcome = Replaced
	default:
		// SkipExisting: nothing to write, the table stays byte-identical.
		return Skipped, nil
	}

	data, err := encodeTable(records)
	if err != nil {
		return Skipped, apperr.NewIO("encode result table", tablePath, err)
	}
	if err := renameio.WriteFile(tablePath, data, 0o644); err != nil {
		return Skipped, apperr.NewIO("write result table", tablePath, err)
	}
	return outcome, nil
}
