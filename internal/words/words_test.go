package words

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReader(t *testing.T) {
	dataSet := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"apple\nbanana\ncherry\n", []string{"apple", "banana", "cherry"}},
		{"  apple  \n\n\t\nbanana", []string{"apple", "banana"}},
		{"apple\r\nbanana\r\n", []string{"apple", "banana"}},
	}

	for _, d := range dataSet {
		ws, err := LoadReader(strings.NewReader(d.input))
		assert.NoError(t, err)
		assert.Equal(t, d.expected, ws, d.input)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("zebra\nant\n"), 0o644))

	ws, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "ant"}, ws)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAsset(t *testing.T) {
	names := Assets()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names), names)
	// every call lists the names in the same order
	for i := 0; i < 5; i++ {
		assert.Equal(t, names, Assets())
	}

	ws, err := Asset(names[0])
	require.NoError(t, err)
	assert.NotEmpty(t, ws)

	_, err = Asset("no-such-asset")
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestSample(t *testing.T) {
	ws := []string{"a", "b", "c", "d", "e", "f"}
	rg := rand.New(rand.NewSource(0))

	picked := Sample(ws, 3, rg)
	assert.Len(t, picked, 3)
	seen := map[string]bool{}
	for _, w := range picked {
		assert.Contains(t, ws, w)
		assert.False(t, seen[w], w)
		seen[w] = true
	}

	all := Sample(ws, 100, rg)
	sort.Strings(all)
	assert.Equal(t, ws, all)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, ws)

	assert.Empty(t, Sample(ws, -1, rg))
	assert.Empty(t, Sample(nil, 3, rg))
}
