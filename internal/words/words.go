// Package words loads the word lists the benchmark harness feeds to trees.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/openacid/testkeys"
	"golang.org/x/exp/slices"
)

var ErrUnknownAsset = errors.New("unknown word asset")

// Load reads one word per line from path. Surrounding blanks are trimmed
// and empty lines skipped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	ws, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return ws, nil
}

func LoadReader(r io.Reader) ([]string, error) {
	ws := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		ws = append(ws, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Assets lists the key sets bundled with testkeys, sorted by name.
func Assets() []string {
	names := slices.Clone(testkeys.AssetNames())
	slices.Sort(names)
	return names
}

// Asset returns a bundled key set, which is sorted ascending.
func Asset(name string) ([]string, error) {
	for _, n := range testkeys.AssetNames() {
		if n == name {
			return testkeys.Load(name), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, name)
}

// Sample picks n words at random positions without repetition. The input is
// left untouched. When n is not smaller than len(ws) all words are returned
// shuffled.
func Sample(ws []string, n int, rg *rand.Rand) []string {
	if n < 0 {
		n = 0
	}
	if n > len(ws) {
		n = len(ws)
	}
	picked := make([]string, n)
	for i, idx := range rg.Perm(len(ws))[:n] {
		picked[i] = ws[idx]
	}
	return picked
}
