// Package results normalizes the heterogeneous outputs of the partitioner
// families into canonical metric records and merges them into per-instance
// CSV result tables.
package results

import (
	"sort"
	"strings"
)

// Param is a single algorithm parameter, named as in the experiment
// configuration. A Param with an empty Value is a bare flag.
type Param struct {
	Key   string
	Value string
}

// Params is the parameter set of one algorithm instance.
type Params []Param

// Signature renders the parameter set as a canonical string: key=value pairs
// sorted by key and joined with underscores. Identical parameter sets yield
// the same signature regardless of the order they were collected in.
func (p Params) Signature() string {
	if len(p) == 0 {
		return ""
	}
	sorted := make(Params, len(p))
	copy(sorted, p)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	parts := make([]string, 0, len(sorted))
	for _, kv := range sorted {
		if kv.Value == "" {
			parts = append(parts, kv.Key)
			continue
		}
		parts = append(parts, kv.Key+"="+kv.Value)
	}
	return strings.Join(parts, "_")
}

// RunMeta describes one completed run as supplied by the experiment driver.
type RunMeta struct {
	Server    string
	Ordering  string
	CoreCount int
	Graph     string
	K         int
	Algorithm string
	Params    Params

	// GraphEdgeCount is the total number of edges of the input graph. The
	// FBS parser needs it to derive the cut ratio; the result artifact does
	// not carry it.
	GraphEdgeCount uint64
}

// MetricRecord is the canonical result of one run.
type MetricRecord struct {
	Graph          string
	K              int
	Algorithm      string
	Params         string
	RuntimeSeconds float64
	MemoryBytes    int64
	EdgeCut        uint64
	CutRatio       float64
}

// RowID identifies a record within one result table. A table holds at most
// one row per RowID.
type RowID struct {
	Graph string
	K     int
}

func (r MetricRecord) RowID() RowID {
	return RowID{Graph: r.Graph, K: r.K}
}
