package bst

import (
	"testing"

	"github.com/e11jah/bst/internal/words"
)

func benchBigKeySet(b *testing.B, f func(b *testing.B, typ string, key []string)) {
	for _, fn := range words.Assets() {
		keys := getKeys(fn)

		n := len(keys)
		if n < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, fn, shuffled(keys))
		})
	}
}

func BenchmarkWordsTreeAdd(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			tree := New[string]()

			for _, k := range keys {
				tree.Add(k)
			}
		}
	})
}

func BenchmarkWordsTreeFind(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tree := From(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Find(keys[i%len(keys)])
		}
	})
}

func BenchmarkWordsTreeFindRebalanced(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tree := From(keys)
		tree.Rebalance()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Find(keys[i%len(keys)])
		}
	})
}

func BenchmarkWordsTreeRebalance(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tree := From(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Rebalance()
		}
	})
}
