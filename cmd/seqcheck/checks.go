package main

import (
	"context"
	"errors"
	"math"

	"braces.dev/errtrace"

	"github.com/ghettovoice/goseq/internal/check"
	"github.com/ghettovoice/goseq/intseq"
	"github.com/ghettovoice/goseq/magnitude"
	"github.com/ghettovoice/goseq/reduce"
	"github.com/ghettovoice/goseq/sequence"
	"github.com/ghettovoice/goseq/shape"
)

func addBuiltinChecks(s *check.Suite) {
	s.Add("assignment", checkAssignment).
		Add("concatenation", checkConcatenation).
		Add("self-assignment", checkSelfAssignment).
		Add("allocation failure", checkAllocationFailure).
		Add("shapes", checkShapes).
		Add("odd reduction", checkOddReduction)
}

func consecutive(size int, start intseq.Elem) (*intseq.IntegerSequence, error) {
	return errtrace.Wrap2(Consecutive{Size: size, Start: start}.build())
}

func checkAssignment(context.Context) error {
	a, err := consecutive(10, 0)
	if err != nil {
		return errtrace.Wrap(err)
	}
	b, err := a.Clone()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if err := check.Expect(a.Equal(b), "copy %v differs from source %v", b, a); err != nil {
		return errtrace.Wrap(err)
	}

	b.Set(0, 1)
	if err := check.Expect(!a.Equal(b), "mutated copy %v still equals source", b); err != nil {
		return errtrace.Wrap(err)
	}

	c, err := consecutive(20, 0)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if err := check.Expect(!a.Equal(c), "sequences of length %d and %d are equal", a.Len(), c.Len()); err != nil {
		return errtrace.Wrap(err)
	}

	if err := a.AssignFrom(c); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(check.Expect(a.Equal(c), "assigned sequence %v differs from source %v", a, c))
}

func checkConcatenation(ctx context.Context) error {
	return errtrace.Wrap(ConcatScenario{
		LHS:  Consecutive{Size: 10, Start: 0},
		RHS:  Consecutive{Size: 20, Start: 10},
		Want: Consecutive{Size: 30, Start: 0},
	}.run(ctx))
}

func checkSelfAssignment(context.Context) error {
	a, err := consecutive(5, 3)
	if err != nil {
		return errtrace.Wrap(err)
	}
	before := a.Slice()
	if err := a.AssignFrom(a); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(check.Diff("self-assignment", a.Slice(), before))
}

func checkAllocationFailure(context.Context) error {
	big, err := intseq.Consecutive(sequence.MustLength(math.MaxInt), 0)
	if !errors.Is(err, sequence.ErrAllocationFailure) {
		return errtrace.Wrap(check.Expect(false, "oversized sequence error = %v, want %v", err, sequence.ErrAllocationFailure))
	}
	if err := check.Expect(big == nil, "oversized sequence = %v, want nil", big); err != nil {
		return errtrace.Wrap(err)
	}

	// zero-sized elements pass the byte limit, so only the length overflows
	huge, err := sequence.New[struct{}](sequence.MustLength(math.MaxInt))
	if err != nil {
		return errtrace.Wrap(err)
	}
	_, err = sequence.Concat(huge, huge)
	if !errors.Is(err, sequence.ErrAllocationFailure) {
		return errtrace.Wrap(check.Expect(false, "overflowing concat error = %v, want %v", err, sequence.ErrAllocationFailure))
	}
	return errtrace.Wrap(check.Expect(huge.Len() == math.MaxInt, "concat input resized to %d", huge.Len()))
}

func checkShapes(context.Context) error {
	rect, err := shape.NewRectangle(2, 3)
	if err != nil {
		return errtrace.Wrap(err)
	}
	circle, err := shape.NewCircle(1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if err := check.Diff("areas", []float64{rect.Area(), circle.Area()}, []float64{6, math.Pi}); err != nil {
		return errtrace.Wrap(err)
	}
	if err := check.Expect(shape.TotalArea(rect, circle) == 6+math.Pi, "total area = %v", shape.TotalArea(rect, circle)); err != nil {
		return errtrace.Wrap(err)
	}

	_, err = shape.NewRectangle(-1, 2)
	if err := check.Expect(errors.Is(err, magnitude.ErrInvalidMagnitude), "negative width error = %v", err); err != nil {
		return errtrace.Wrap(err)
	}
	_, err = shape.NewCircle(-1)
	return errtrace.Wrap(check.Expect(errors.Is(err, magnitude.ErrInvalidMagnitude), "negative radius error = %v", err))
}

func checkOddReduction(context.Context) error {
	got := []int{
		reduce.AddOdd([]int{1, 2, 3, 4, 5, 6, 7}),
		reduce.AddOdd([]int{1, 2, 3, 4, 5, 6, 7, 8}),
		reduce.AddOdd([]int{-1, 2, -3, 4, 5, 6, -7}),
	}
	if err := check.Diff("odd sums", got, []int{16, 16, -6}); err != nil {
		return errtrace.Wrap(err)
	}
	s := reduce.AddOdd([]string{"Hello", "Cruel", " world"})
	return errtrace.Wrap(check.Expect(s == "Hello world", "odd string sum = %q, want %q", s, "Hello world"))
}
