package results

import (
	"errors"
	"fmt"
	"os"

	"partbench/internal/apperr"
	"partbench/internal/fbs/PartitionInfo"
)

// ParseFBS reads a PartitionLog FlatBuffers artifact and converts it into a
// MetricRecord. The cut ratio is derived as edge_cut / meta.GraphEdgeCount;
// the artifact itself is never consulted for the edge count, the driver must
// supply it.
func ParseFBS(artifactPath string, meta RunMeta) (MetricRecord, error) {
	buf, err := os.ReadFile(artifactPath)
	if err != nil {
		return MetricRecord{}, apperr.NewMalformedArtifact(artifactPath, err)
	}

	fields, err := extractPartitionLog(buf)
	if err != nil {
		return MetricRecord{}, apperr.NewMalformedArtifact(artifactPath, err)
	}

	if meta.GraphEdgeCount == 0 {
		return MetricRecord{}, apperr.NewMissingGraphMetadata(meta.Graph)
	}

	return MetricRecord{
		Graph:          meta.Graph,
		K:              meta.K,
		Algorithm:      meta.Algorithm,
		Params:         meta.Params.Signature(),
		RuntimeSeconds: fields.totalTime,
		MemoryBytes:    fields.maxRss,
		EdgeCut:        fields.edgeCut,
		CutRatio:       float64(fields.edgeCut) / float64(meta.GraphEdgeCount),
	}, nil
}

type partitionLogFields struct {
	totalTime float64
	maxRss    int64
	edgeCut   uint64
}

// extractPartitionLog performs all FlatBuffers table access. The FlatBuffers
// runtime panics on truncated buffers and out-of-range offsets, so the whole
// extraction runs under a recover that converts panics into errors.
func extractPartitionLog(buf []byte) (fields partitionLogFields, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode partition log: %v", r)
		}
	}()

	if len(buf) < 8 {
		return fields, fmt.Errorf("buffer too short: %d bytes", len(buf))
	}

	log := PartitionInfo.GetRootAsPartitionLog(buf, 0)

	runtime := log.Runtime(nil)
	if runtime == nil {
		return fields, errors.New("missing runtime table")
	}
	mem := log.MemoryConsumption(nil)
	if mem == nil {
		return fields, errors.New("missing memory_consumption table")
	}
	metrics := log.Metrics(nil)
	if metrics == nil {
		return fields, errors.New("missing metrics table")
	}

	fields.totalTime = runtime.TotalTime()
	fields.maxRss = mem.MaxRss()
	fields.edgeCut = metrics.EdgeCut()

	if fields.totalTime < 0 {
		return fields, errors.New("negative total_time")
	}
	if fields.maxRss < 0 {
		return fields, errors.New("negative max_rss")
	}
	return fields, nil
}
