package expconfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"partbench/internal/results"
)

// Abbr shortens a numeric parameter value for use in algorithm instance
// names: 512 stays "512", 32768 becomes "32k", 1048576 becomes "1m".
// Non-numeric values pass through unchanged.
func Abbr(value string) string {
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}

	switch {
	case num < 1000:
		if num == math.Trunc(num) {
			return strconv.Itoa(int(num))
		}
		return value
	case num < 1_000_000:
		return fmt.Sprintf("%dk", int(num)/1000)
	default:
		m := num / 1_000_000
		if m == math.Trunc(m) {
			return fmt.Sprintf("%dm", int(m))
		}
		truncated := math.Floor(m*10) / 10
		if truncated == math.Trunc(truncated) {
			return fmt.Sprintf("%dm", int(truncated))
		}
		return fmt.Sprintf("%.1fm", truncated)
	}
}

// AlgoName derives the algorithm instance name for one to_run row:
// the base algo plus one <prefix><abbr(value)> part per hyperparam, followed
// by the fixed params. Example: "heistream" with row "32768" and prefix ""
// yields "heistream_32k".
func AlgoName(conf Configuration, row string) (string, error) {
	values := strings.Fields(row)
	if len(values) < len(conf.Hyperparams) {
		return "", fmt.Errorf("to_run row %q has %d values, configuration %q needs %d",
			row, len(values), conf.Algo, len(conf.Hyperparams))
	}

	parts := make([]string, 0, len(conf.Hyperparams)+len(conf.Params))
	for i, hp := range conf.Hyperparams {
		parts = append(parts, hp.Prefix+Abbr(values[i]))
	}
	for _, p := range conf.Params {
		if p.Value == "" {
			parts = append(parts, p.Name)
			continue
		}
		parts = append(parts, p.Name+Abbr(p.Value))
	}

	if len(parts) == 0 {
		return conf.Algo, nil
	}
	return conf.Algo + "_" + strings.Join(parts, "_"), nil
}

// RunParams collects the full parameter set of one to_run row: hyperparams
// bound to the row's values, then the fixed params.
func RunParams(conf Configuration, row string) (results.Params, error) {
	values := strings.Fields(row)
	if len(values) < len(conf.Hyperparams) {
		return nil, fmt.Errorf("to_run row %q has %d values, configuration %q needs %d",
			row, len(values), conf.Algo, len(conf.Hyperparams))
	}

	params := make(results.Params, 0, len(conf.Hyperparams)+len(conf.Params))
	for i, hp := range conf.Hyperparams {
		params = append(params, results.Param{Key: hp.Name, Value: values[i]})
	}
	for _, p := range conf.Params {
		params = append(params, results.Param{Key: p.Name, Value: p.Value})
	}
	return params, nil
}
