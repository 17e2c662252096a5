package bench

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	Log.SetOutput(io.Discard)
}

func wordList(n int) []string {
	ws := make([]string, n)
	for i := range ws {
		ws[i] = fmt.Sprintf("word%05d", i)
	}
	return ws
}

func TestSubjects(t *testing.T) {
	ws := wordList(500)
	for _, name := range SubjectNames() {
		s, err := NewSubject(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())

		s.Build(ws)
		for _, w := range ws {
			assert.True(t, s.Search(w), "%s: %s", name, w)
		}
		assert.False(t, s.Search("absent"), name)

		// rebuilding drops the previous content
		s.Build(ws[:10])
		assert.False(t, s.Search(ws[100]), name)
		assert.True(t, s.Search(ws[5]), name)
	}

	_, err := NewSubject("skiplist")
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

func TestSubjectNames(t *testing.T) {
	names := SubjectNames()
	assert.Len(t, names, len(registry))
	assert.True(t, sort.StringsAreSorted(names), names)
	for _, name := range DefaultSubjects {
		assert.Contains(t, names, name)
	}
	for name := range registry {
		assert.Contains(t, names, name)
	}
}

func TestTreeSubjectShape(t *testing.T) {
	ws := wordList(100)

	ordered, err := NewSubject("ordered")
	require.NoError(t, err)
	// sampled order does not matter, sorting turns it into a chain
	ordered.Build([]string{ws[50], ws[3], ws[99]})
	assert.Equal(t, 2, ordered.(Shaped).Height())
	ordered.Build(ws)
	assert.Equal(t, 99, ordered.(Shaped).Height())
	assert.False(t, ordered.(Shaped).IsBalanced())

	balanced, err := NewSubject("balanced")
	require.NoError(t, err)
	balanced.Build(ws)
	assert.LessOrEqual(t, balanced.(Shaped).Height(), 6)
	assert.True(t, balanced.(Shaped).IsBalanced())

	_, ok := Subject(&listSubject{}).(Shaped)
	assert.False(t, ok)
}

func TestRun(t *testing.T) {
	ws := wordList(2000)
	cfg := Config{
		Sample:   300,
		Queries:  200,
		Seed:     7,
		Subjects: SubjectNames(),
	}

	results, err := Run(cfg, ws)
	require.NoError(t, err)
	require.Len(t, results, len(cfg.Subjects))

	hits := results[0].Hits
	for i, r := range results {
		assert.Equal(t, cfg.Subjects[i], r.Subject)
		assert.Equal(t, 300, r.Items)
		assert.Equal(t, 200, r.Queries)
		// all subjects hold the same sample and answer the same queries
		assert.Equal(t, hits, r.Hits, r.Subject)
		assert.GreaterOrEqual(t, r.Build, time.Duration(0))
	}

	byName := map[string]Result{}
	for _, r := range results {
		byName[r.Subject] = r
	}
	assert.True(t, byName["ordered"].Shaped)
	assert.Equal(t, 299, byName["ordered"].Height)
	assert.True(t, byName["balanced"].Balanced)
	assert.False(t, byName["btree"].Shaped)

	again, err := Run(cfg, ws)
	require.NoError(t, err)
	assert.Equal(t, hits, again[0].Hits)

	_, err = Run(Config{Sample: 10, Queries: 10, Subjects: []string{"random", "trie"}}, ws)
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

func TestRunSampleLargerThanWords(t *testing.T) {
	ws := wordList(50)
	results, err := Run(Config{Sample: 1000, Queries: 1000, Subjects: []string{"random"}}, ws)
	require.NoError(t, err)
	assert.Equal(t, 50, results[0].Items)
	assert.Equal(t, 50, results[0].Hits)
}

func TestMeasure(t *testing.T) {
	called := false
	d := Measure(func() {
		called = true
		time.Sleep(time.Millisecond)
	})
	assert.True(t, called)
	assert.GreaterOrEqual(t, d, time.Millisecond)
}

func TestWriteReport(t *testing.T) {
	results := []Result{
		{Subject: "list", Items: 10, Queries: 5, Hits: 3, Build: time.Millisecond},
		{Subject: "random", Items: 10, Queries: 5, Hits: 3, Shaped: true, Height: 4, Balanced: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"SUBJECT", "ITEMS", "BUILD", "SEARCH", "HITS", "HEIGHT", "BALANCED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"list", "10", "1ms", "0s", "3/5", "-", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"random", "10", "0s", "0s", "3/5", "4", "true"}, strings.Fields(lines[2]))
}
