package expconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partbench/internal/results"
)

func TestAbbr(t *testing.T) {
	cases := map[string]string{
		"512":      "512",
		"999":      "999",
		"1000":     "1k",
		"32768":    "32k",
		"65536":    "65k",
		"131072":   "131k",
		"999999":   "999k",
		"1000000":  "1m",
		"1048576":  "1m",
		"2500000":  "2.5m",
		"notanum":  "notanum",
		"imbal_05": "imbal_05",
	}
	for in, want := range cases {
		assert.Equal(t, want, Abbr(in), "Abbr(%q)", in)
	}
}

func TestAlgoName(t *testing.T) {
	t.Run("single hyperparam without prefix", func(t *testing.T) {
		conf := Configuration{
			Algo:        "heistream",
			Hyperparams: []Hyperparam{{Name: "stream_buffer", Prefix: ""}},
		}
		name, err := AlgoName(conf, "32768")
		require.NoError(t, err)
		assert.Equal(t, "heistream_32k", name)
	})

	t.Run("multiple hyperparams with prefixes", func(t *testing.T) {
		conf := Configuration{
			Algo: "cuttana",
			Hyperparams: []Hyperparam{
				{Name: "mbs", Prefix: "mbs"},
				{Name: "subp", Prefix: "subp"},
			},
		}
		name, err := AlgoName(conf, "1048576 16")
		require.NoError(t, err)
		assert.Equal(t, "cuttana_mbs1m_subp16", name)

		name, err = AlgoName(conf, "1048576 4096")
		require.NoError(t, err)
		assert.Equal(t, "cuttana_mbs1m_subp4k", name)
	})

	t.Run("fixed params appended", func(t *testing.T) {
		conf := Configuration{
			Algo:        "heistream",
			Hyperparams: []Hyperparam{{Name: "stream_buffer", Prefix: ""}},
			Params: []FixedParam{
				{Name: "imbalance", Value: "5"},
				{Name: "fast"},
			},
		}
		name, err := AlgoName(conf, "65536")
		require.NoError(t, err)
		assert.Equal(t, "heistream_65k_imbalance5_fast", name)
	})

	t.Run("no hyperparams or params", func(t *testing.T) {
		name, err := AlgoName(Configuration{Algo: "baseline"}, "")
		require.NoError(t, err)
		assert.Equal(t, "baseline", name)
	})

	t.Run("too few values", func(t *testing.T) {
		conf := Configuration{
			Algo: "cuttana",
			Hyperparams: []Hyperparam{
				{Name: "mbs", Prefix: "mbs"},
				{Name: "subp", Prefix: "subp"},
			},
		}
		_, err := AlgoName(conf, "1048576")
		assert.Error(t, err)
	})
}

func TestRunParams(t *testing.T) {
	conf := Configuration{
		Algo: "cuttana",
		Hyperparams: []Hyperparam{
			{Name: "mbs", Prefix: "mbs"},
			{Name: "subp", Prefix: "subp"},
		},
		Params: []FixedParam{{Name: "dmax", Value: "100"}},
	}
	params, err := RunParams(conf, "1048576 16")
	require.NoError(t, err)
	assert.Equal(t, results.Params{
		{Key: "mbs", Value: "1048576"},
		{Key: "subp", Value: "16"},
		{Key: "dmax", Value: "100"},
	}, params)
}
