package results

import (
	"fmt"
	"strconv"
	"strings"

	"partbench/internal/apperr"
)

// ParseLine converts one line of a line-based family's output into a
// MetricRecord. The line must contain exactly four whitespace-separated
// fields in fixed order: runtime, memory, edge cut, edge-cut ratio. The ratio
// is taken verbatim from the program's own report and never recomputed.
func ParseLine(line string, meta RunMeta) (MetricRecord, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 4 {
		return MetricRecord{}, apperr.NewMalformedLine(line, fmt.Sprintf("expected 4 fields, got %d", len(fields)))
	}

	runtime, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return MetricRecord{}, apperr.NewMalformedLineWrap(line, "runtime field", err)
	}
	if runtime < 0 {
		return MetricRecord{}, apperr.NewMalformedLine(line, "negative runtime")
	}

	memory, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return MetricRecord{}, apperr.NewMalformedLineWrap(line, "memory field", err)
	}
	if memory < 0 {
		return MetricRecord{}, apperr.NewMalformedLine(line, "negative memory")
	}

	edgeCut, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return MetricRecord{}, apperr.NewMalformedLineWrap(line, "edge cut field", err)
	}

	ratio, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return MetricRecord{}, apperr.NewMalformedLineWrap(line, "cut ratio field", err)
	}

	return MetricRecord{
		Graph:          meta.Graph,
		K:              meta.K,
		Algorithm:      meta.Algorithm,
		Params:         meta.Params.Signature(),
		RuntimeSeconds: runtime,
		MemoryBytes:    memory,
		EdgeCut:        edgeCut,
		CutRatio:       ratio,
	}, nil
}
