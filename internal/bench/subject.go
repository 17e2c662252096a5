package bench

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/slices"

	"github.com/e11jah/bst"
)

const btreeDegree = 32

// Subject is a collection the harness can fill with words and search.
// Build replaces any previous content.
type Subject interface {
	Name() string
	Build(ws []string)
	Search(w string) bool
}

// Shaped is implemented by subjects backed by a bst.Tree.
type Shaped interface {
	Height() int
	IsBalanced() bool
}

// TreeSubject drives a bst.Tree through its public interface only.
type TreeSubject struct {
	Label string
	Tree  bst.Tree[string]
	// Sorted adds the words in ascending order, which degrades the tree
	// into a chain.
	Sorted bool
	// Rebalance is called once after all words are added.
	Rebalance bool
}

func (s *TreeSubject) Name() string {
	return s.Label
}

func (s *TreeSubject) Build(ws []string) {
	s.Tree.Clear()
	if s.Sorted {
		ws = slices.Clone(ws)
		slices.Sort(ws)
	}
	for _, w := range ws {
		s.Tree.Add(w)
	}
	if s.Rebalance {
		s.Tree.Rebalance()
	}
}

func (s *TreeSubject) Search(w string) bool {
	return s.Tree.Contains(w)
}

func (s *TreeSubject) Height() int {
	return s.Tree.Height()
}

func (s *TreeSubject) IsBalanced() bool {
	return s.Tree.IsBalanced()
}

// listSubject scans a slice, the baseline every tree is compared with.
type listSubject struct {
	ws []string
}

func (s *listSubject) Name() string {
	return "list"
}

func (s *listSubject) Build(ws []string) {
	s.ws = slices.Clone(ws)
}

func (s *listSubject) Search(w string) bool {
	return slices.Contains(s.ws, w)
}

type btreeSubject struct {
	tr *btree.BTreeG[string]
}

func (s *btreeSubject) Name() string {
	return "btree"
}

func (s *btreeSubject) Build(ws []string) {
	s.tr = btree.NewOrderedG[string](btreeDegree)
	for _, w := range ws {
		s.tr.ReplaceOrInsert(w)
	}
}

func (s *btreeSubject) Search(w string) bool {
	return s.tr.Has(w)
}

type llrbWord string

func (w llrbWord) Less(than llrb.Item) bool {
	return w < than.(llrbWord)
}

type llrbSubject struct {
	tr *llrb.LLRB
}

func (s *llrbSubject) Name() string {
	return "llrb"
}

func (s *llrbSubject) Build(ws []string) {
	s.tr = llrb.New()
	for _, w := range ws {
		s.tr.InsertNoReplace(llrbWord(w))
	}
}

func (s *llrbSubject) Search(w string) bool {
	return s.tr.Has(llrbWord(w))
}

type redBlackSubject struct {
	tr *redblacktree.Tree
}

func (s *redBlackSubject) Name() string {
	return "redblack"
}

func (s *redBlackSubject) Build(ws []string) {
	s.tr = redblacktree.NewWithStringComparator()
	for _, w := range ws {
		s.tr.Put(w, struct{}{})
	}
}

func (s *redBlackSubject) Search(w string) bool {
	_, found := s.tr.Get(w)
	return found
}

type hashmapSubject struct {
	m *hashmap.Map[string, struct{}]
}

func (s *hashmapSubject) Name() string {
	return "hashmap"
}

func (s *hashmapSubject) Build(ws []string) {
	s.m = hashmap.New[string, struct{}]()
	for _, w := range ws {
		s.m.Set(w, struct{}{})
	}
}

func (s *hashmapSubject) Search(w string) bool {
	_, found := s.m.Get(w)
	return found
}

type haxmapSubject struct {
	m *haxmap.Map[string, struct{}]
}

func (s *haxmapSubject) Name() string {
	return "haxmap"
}

func (s *haxmapSubject) Build(ws []string) {
	s.m = haxmap.New[string, struct{}]()
	for _, w := range ws {
		s.m.Set(w, struct{}{})
	}
}

func (s *haxmapSubject) Search(w string) bool {
	_, found := s.m.Get(w)
	return found
}
