// Package bench times how fast word lookups are on trees built in different
// ways, next to a plain list and a few library containers.
package bench

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/e11jah/bst"
	"github.com/e11jah/bst/internal/words"
)

var Log = logrus.New()

var ErrUnknownSubject = errors.New("unknown subject")

// DefaultSubjects are the four constructions of the word search demo.
var DefaultSubjects = []string{"list", "ordered", "random", "balanced"}

var registry = map[string]func() Subject{
	"list": func() Subject { return &listSubject{} },
	"ordered": func() Subject {
		return &TreeSubject{Label: "ordered", Tree: bst.New[string](), Sorted: true}
	},
	"random": func() Subject {
		return &TreeSubject{Label: "random", Tree: bst.New[string]()}
	},
	"balanced": func() Subject {
		return &TreeSubject{Label: "balanced", Tree: bst.New[string](), Rebalance: true}
	},
	"btree":    func() Subject { return &btreeSubject{} },
	"llrb":     func() Subject { return &llrbSubject{} },
	"redblack": func() Subject { return &redBlackSubject{} },
	"hashmap":  func() Subject { return &hashmapSubject{} },
	"haxmap":   func() Subject { return &haxmapSubject{} },
}

type Config struct {
	// Sample is how many words are loaded into every subject.
	Sample int
	// Queries is how many words, drawn from the whole list, are searched.
	Queries  int
	Seed     int64
	Subjects []string
}

func DefaultConfig() Config {
	return Config{
		Sample:   10000,
		Queries:  10000,
		Seed:     1,
		Subjects: DefaultSubjects,
	}
}

type Result struct {
	Subject string
	Items   int
	Build   time.Duration
	Search  time.Duration
	Queries int
	Hits    int
	// Height and Balanced are only meaningful when Shaped is set.
	Shaped   bool
	Height   int
	Balanced bool
}

// SubjectNames lists every subject Run accepts, sorted by name.
func SubjectNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func NewSubject(name string) (Subject, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, name)
	}
	return mk(), nil
}

// Measure returns the wall clock time fnc took.
func Measure(fnc func()) time.Duration {
	start := time.Now()
	fnc()
	return time.Since(start)
}

// Run builds every configured subject from the same sample of ws and
// searches the same queries in each.
func Run(cfg Config, ws []string) ([]Result, error) {
	subjects := make([]Subject, 0, len(cfg.Subjects))
	for _, name := range cfg.Subjects {
		s, err := NewSubject(name)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}

	rg := rand.New(rand.NewSource(cfg.Seed))
	items := words.Sample(ws, cfg.Sample, rg)
	queries := words.Sample(ws, cfg.Queries, rg)
	Log.WithFields(logrus.Fields{
		"words": len(ws), "items": len(items), "queries": len(queries), "seed": cfg.Seed,
	}).Debug("sampled words")

	results := make([]Result, 0, len(subjects))
	for _, s := range subjects {
		results = append(results, RunSubject(s, items, queries))
	}
	return results, nil
}

func RunSubject(s Subject, items, queries []string) Result {
	r := Result{Subject: s.Name(), Items: len(items), Queries: len(queries)}
	r.Build = Measure(func() {
		s.Build(items)
	})
	r.Search = Measure(func() {
		for _, q := range queries {
			if s.Search(q) {
				r.Hits++
			}
		}
	})
	if sh, ok := s.(Shaped); ok {
		r.Shaped = true
		r.Height = sh.Height()
		r.Balanced = sh.IsBalanced()
	}

	Log.WithFields(logrus.Fields{
		"subject": r.Subject, "build": r.Build, "search": r.Search, "hits": r.Hits,
	}).Debug("measured subject")
	return r
}

func WriteReport(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBJECT\tITEMS\tBUILD\tSEARCH\tHITS\tHEIGHT\tBALANCED")
	for _, r := range results {
		height, balanced := "-", "-"
		if r.Shaped {
			height = fmt.Sprint(r.Height)
			balanced = fmt.Sprint(r.Balanced)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d/%d\t%s\t%s\n",
			r.Subject, r.Items, r.Build, r.Search, r.Hits, r.Queries, height, balanced)
	}
	return tw.Flush()
}
