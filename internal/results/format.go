package results

import "strings"

// OutputFormat is the result representation an algorithm family produces.
type OutputFormat int

const (
	// FBSBased families write a PartitionLog FlatBuffers artifact. This is
	// the default: the baseline family and heistream share it.
	FBSBased OutputFormat = iota
	// LineBased families print a single "runtime memory edge_cut ratio" line.
	LineBased
)

func (f OutputFormat) String() string {
	switch f {
	case FBSBased:
		return "fbs"
	case LineBased:
		return "line"
	default:
		return "unknown"
	}
}

// lineMarkers identify the algorithm families that report results as a single
// output line instead of a PartitionLog artifact.
var lineMarkers = []string{"cuttana", "fennel"}

// Classify maps an algorithm identifier to its output format. Matching is
// case-insensitive substring containment; identifiers without a line-based
// marker fall back to FBSBased. Every identifier classifies, there is no
// error path.
func Classify(identifier string) OutputFormat {
	id := strings.ToLower(identifier)
	for _, marker := range lineMarkers {
		if strings.Contains(id, marker) {
			return LineBased
		}
	}
	return FBSBased
}
