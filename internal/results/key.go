package results

import (
	"fmt"
	"path/filepath"
	"strings"

	"partbench/internal/apperr"
)

// FormatCoreCount renders a core count as a path component, "1core" or
// "<n>cores".
func FormatCoreCount(n int) string {
	if n == 1 {
		return "1core"
	}
	return fmt.Sprintf("%dcores", n)
}

// BuildKey derives the result table path and the row identity for a run.
// The table path is
//
//	<resultsRoot>/<server>/<ordering>/<coreCount>/<algorithm>_<params>.csv
//
// and the row identity is (graph, k). Components containing a path separator
// are rejected so a hostile identifier cannot escape the results root.
func BuildKey(resultsRoot string, meta RunMeta) (string, RowID, error) {
	cores := FormatCoreCount(meta.CoreCount)
	sig := meta.Params.Signature()

	components := []struct {
		name  string
		value string
	}{
		{"server", meta.Server},
		{"ordering", meta.Ordering},
		{"core_count", cores},
		{"algorithm", meta.Algorithm},
		{"params", sig},
	}
	for _, c := range components {
		if err := checkComponent(c.name, c.value); err != nil {
			return "", RowID{}, err
		}
	}

	filename := meta.Algorithm + ".csv"
	if sig != "" {
		filename = meta.Algorithm + "_" + sig + ".csv"
	}

	path := filepath.Join(resultsRoot, meta.Server, meta.Ordering, cores, filename)
	return path, RowID{Graph: meta.Graph, K: meta.K}, nil
}

func checkComponent(name, value string) error {
	if strings.ContainsAny(value, `/\`) {
		return apperr.NewInvalidPathComponent(name, value)
	}
	if value == ".." || value == "." {
		return apperr.NewInvalidPathComponent(name, value)
	}
	if value == "" && name != "params" {
		return apperr.NewInvalidPathComponent(name, value)
	}
	return nil
}
