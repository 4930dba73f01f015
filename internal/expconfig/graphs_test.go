package expconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphName(t *testing.T) {
	cases := []struct {
		ordering string
		want     string
	}{
		{"natural", "g1"},
		{"random", "g1_r1"},
		{"random2", "g1_r2"},
		{"random3", "g1_r3"},
	}
	for _, c := range cases {
		got, err := GraphName("g1", c.ordering)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := GraphName("g1", "sideways")
	assert.Error(t, err)
}

func TestReadGraphSet(t *testing.T) {
	t.Run("skips blank lines", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "test_set"),
			[]byte("g1\n\n  g2  \ng3\n"), 0o644))

		graphs, err := ReadGraphSet(dir, "test_set")
		require.NoError(t, err)
		assert.Equal(t, []string{"g1", "g2", "g3"}, graphs)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadGraphSet(t.TempDir(), "absent_set")
		assert.Error(t, err)
	})
}
