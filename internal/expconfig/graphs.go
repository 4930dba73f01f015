package expconfig

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GraphName returns the on-disk graph name for an ordering. Reordered
// variants carry an _rN suffix.
func GraphName(graph, ordering string) (string, error) {
	switch ordering {
	case "natural":
		return graph, nil
	case "random":
		return graph + "_r1", nil
	case "random2":
		return graph + "_r2", nil
	case "random3":
		return graph + "_r3", nil
	default:
		return "", fmt.Errorf("invalid ordering %q", ordering)
	}
}

// ReadGraphSet reads the graph set file <dir>/<setName>: one graph name per
// line, blank lines ignored.
func ReadGraphSet(dir, setName string) ([]string, error) {
	path := filepath.Join(dir, setName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read graph set %q: %w", setName, err)
	}
	defer f.Close()

	var graphs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			graphs = append(graphs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read graph set %q: %w", setName, err)
	}
	return graphs, nil
}
