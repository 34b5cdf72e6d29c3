// Package reduce folds the elements found at even indexes of a sequence,
// that is the first, third, fifth and so on.
package reduce

import (
	"iter"
	"slices"

	"github.com/ghettovoice/goseq/internal/constraints"
)

// FoldOdd folds the elements of seq at indexes 0, 2, 4, ... into start using fn.
func FoldOdd[T, A any](seq iter.Seq[T], start A, fn func(acc A, v T) A) A {
	acc := start
	pos := 0
	for v := range seq {
		if pos%2 == 0 {
			acc = fn(acc, v)
		}
		pos++
	}
	return acc
}

// SumOdd adds the elements of seq at indexes 0, 2, 4, ... to start.
func SumOdd[T constraints.Addable](seq iter.Seq[T], start T) T {
	return FoldOdd(seq, start, add[T])
}

// AddOdd adds the elements of vals at indexes 0, 2, 4, ... starting from the zero value.
func AddOdd[T constraints.Addable](vals []T) T {
	var zero T
	return SumOdd(slices.Values(vals), zero)
}

func add[T constraints.Addable](a, b T) T { return a + b }
