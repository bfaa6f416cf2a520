package internal

import (
	"iter"
	"maps"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// CollectDefines gathers define sequences into a map. A name repeated in a
// later sequence overrides the earlier value.
func CollectDefines(seqs ...iter.Seq2[string, int]) map[string]int {
	return maps.Collect(IterSeq2Concat(seqs...))
}
