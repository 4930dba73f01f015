package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partbench/internal/apperr"
	"partbench/internal/fbs/PartitionInfo"
)

type artifactSpec struct {
	totalTime   float64
	maxRss      int64
	edgeCut     uint64
	omitRuntime bool
	omitMemory  bool
	omitMetrics bool
}

func writeArtifact(t *testing.T, spec artifactSpec) string {
	t.Helper()
	builder := flatbuffers.NewBuilder(256)

	var rt, mem, met flatbuffers.UOffsetT
	if !spec.omitRuntime {
		PartitionInfo.RunTimeStart(builder)
		PartitionInfo.RunTimeAddTotalTime(builder, spec.totalTime)
		rt = PartitionInfo.RunTimeEnd(builder)
	}
	if !spec.omitMemory {
		PartitionInfo.MemoryConsumptionStart(builder)
		PartitionInfo.MemoryConsumptionAddMaxRss(builder, spec.maxRss)
		mem = PartitionInfo.MemoryConsumptionEnd(builder)
	}
	if !spec.omitMetrics {
		PartitionInfo.PartitionMetricsStart(builder)
		PartitionInfo.PartitionMetricsAddEdgeCut(builder, spec.edgeCut)
		met = PartitionInfo.PartitionMetricsEnd(builder)
	}

	PartitionInfo.PartitionLogStart(builder)
	if !spec.omitRuntime {
		PartitionInfo.PartitionLogAddRuntime(builder, rt)
	}
	if !spec.omitMemory {
		PartitionInfo.PartitionLogAddMemoryConsumption(builder, mem)
	}
	if !spec.omitMetrics {
		PartitionInfo.PartitionLogAddMetrics(builder, met)
	}
	log := PartitionInfo.PartitionLogEnd(builder)
	builder.Finish(log)

	path := filepath.Join(t.TempDir(), "g1_4.bin")
	require.NoError(t, os.WriteFile(path, builder.FinishedBytes(), 0o644))
	return path
}

func fbsMeta() RunMeta {
	return RunMeta{
		Server:         "109",
		Ordering:       "natural",
		CoreCount:      4,
		Graph:          "g1",
		K:              4,
		Algorithm:      "heistream_32k",
		Params:         Params{{Key: "stream_buffer", Value: "32768"}},
		GraphEdgeCount: 200,
	}
}

func TestParseFBS(t *testing.T) {
	t.Run("complete artifact", func(t *testing.T) {
		path := writeArtifact(t, artifactSpec{totalTime: 42.25, maxRss: 1 << 20, edgeCut: 40})
		rec, err := ParseFBS(path, fbsMeta())
		require.NoError(t, err)
		assert.Equal(t, "g1", rec.Graph)
		assert.Equal(t, 4, rec.K)
		assert.Equal(t, 42.25, rec.RuntimeSeconds)
		assert.Equal(t, int64(1<<20), rec.MemoryBytes)
		assert.Equal(t, uint64(40), rec.EdgeCut)
		assert.Equal(t, 0.2, rec.CutRatio)
	})

	t.Run("missing edge count in metadata", func(t *testing.T) {
		path := writeArtifact(t, artifactSpec{totalTime: 1, maxRss: 1, edgeCut: 40})
		meta := fbsMeta()
		meta.GraphEdgeCount = 0
		_, err := ParseFBS(path, meta)
		var missing *apperr.MissingGraphMetadataError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "g1", missing.Graph)
	})

	t.Run("missing required sub-table", func(t *testing.T) {
		for name, spec := range map[string]artifactSpec{
			"runtime": {omitRuntime: true, maxRss: 1, edgeCut: 1},
			"memory":  {omitMemory: true, totalTime: 1, edgeCut: 1},
			"metrics": {omitMetrics: true, totalTime: 1, maxRss: 1},
		} {
			path := writeArtifact(t, spec)
			_, err := ParseFBS(path, fbsMeta())
			var malformed *apperr.MalformedArtifactError
			assert.True(t, errors.As(err, &malformed), "omitted %s", name)
		}
	})

	t.Run("garbage bytes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.bin")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0o644))
		_, err := ParseFBS(path, fbsMeta())
		var malformed *apperr.MalformedArtifactError
		require.True(t, errors.As(err, &malformed))
	})

	t.Run("truncated file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.bin")
		require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02}, 0o644))
		_, err := ParseFBS(path, fbsMeta())
		var malformed *apperr.MalformedArtifactError
		require.True(t, errors.As(err, &malformed))
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := ParseFBS(filepath.Join(t.TempDir(), "nope.bin"), fbsMeta())
		var malformed *apperr.MalformedArtifactError
		require.True(t, errors.As(err, &malformed))
	})
}
