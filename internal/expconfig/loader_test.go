package expconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		yaml := `
server: "109"

orderings:
  natural:
    konect_cc_set: true
  random:
    konect_cc_set: false

sets:
  konect_cc_set:
    k: [4, 8]

graphs:
  g1: 200
  g2: 1000

configurations:
  - algo: heistream
    max_cores: 4
    hyperparams:
      - name: stream_buffer
        prefix: ""
    to_run: ["32768", "65536"]
  - algo: cuttana
    hyperparams:
      - name: mbs
        prefix: mbs
      - name: subp
        prefix: subp
    to_run: ["1048576 16"]
`
		c, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "109", c.Server)
		assert.Len(t, c.Configurations, 2)
		assert.Equal(t, []int{4, 8}, c.SetFor("konect_cc_set").K)
		assert.Equal(t, uint64(200), c.Graphs["g1"])
		assert.Equal(t, defaultMaxCores, c.Configurations[1].MaxCores)
	})

	t.Run("unknown set falls back to default k values", func(t *testing.T) {
		c := &Config{}
		assert.Equal(t, defaultKValues, c.SetFor("anything").K)
	})

	t.Run("no orderings", func(t *testing.T) {
		_, err := Parse([]byte(`
configurations:
  - algo: heistream
    to_run: ["1"]
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no orderings")
	})

	t.Run("unknown ordering", func(t *testing.T) {
		_, err := Parse([]byte(`
orderings:
  sideways:
    s: true
configurations:
  - algo: heistream
    to_run: ["1"]
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown ordering")
	})

	t.Run("no configurations", func(t *testing.T) {
		_, err := Parse([]byte(`
orderings:
  natural:
    s: true
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no configurations")
	})

	t.Run("configuration without algo", func(t *testing.T) {
		_, err := Parse([]byte(`
orderings:
  natural:
    s: true
configurations:
  - to_run: ["1"]
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no algo")
	})

	t.Run("configuration without to_run", func(t *testing.T) {
		_, err := Parse([]byte(`
orderings:
  natural:
    s: true
configurations:
  - algo: heistream
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no to_run")
	})

	t.Run("invalid k", func(t *testing.T) {
		_, err := Parse([]byte(`
orderings:
  natural:
    s: true
sets:
  s:
    k: [4, 0]
configurations:
  - algo: heistream
    to_run: ["1"]
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid k")
	})
}
