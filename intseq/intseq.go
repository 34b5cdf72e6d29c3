// Package intseq provides a sequence of unsigned 32-bit integers.
package intseq

//go:generate go tool errtrace -w .

import (
	"iter"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/goseq/internal/errorutil"
	"github.com/ghettovoice/goseq/sequence"
)

// Elem is the element type of [IntegerSequence].
type Elem = uint32

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// IntegerSequence is a sequence of [Elem] values.
// It follows the semantics of [sequence.Sequence] and must not be copied by value.
type IntegerSequence struct {
	_ noCopy
	s *sequence.Sequence[Elem]
}

// New returns a sequence of size zero elements.
// It fails with [sequence.ErrAllocationFailure] when the size cannot be allocated.
func New(size sequence.Length) (*IntegerSequence, error) {
	s, err := sequence.New[Elem](size)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &IntegerSequence{s: s}, nil
}

// Of returns a sequence holding a copy of vals.
func Of(vals ...Elem) (*IntegerSequence, error) {
	s, err := sequence.FromSlice(vals...)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &IntegerSequence{s: s}, nil
}

// Consecutive returns a sequence of size elements where the element i equals start + i.
// The values wrap around on uint32 overflow.
func Consecutive(size sequence.Length, start Elem) (*IntegerSequence, error) {
	is, err := New(size)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	for i := range is.Len() {
		is.Set(i, start+Elem(i))
	}
	return is, nil
}

// Concat returns a new sequence with the elements of lhs followed by the elements of rhs.
// Neither input is modified.
func Concat(lhs, rhs *IntegerSequence) (*IntegerSequence, error) {
	s, err := sequence.Concat(lhs.seq(), rhs.seq())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &IntegerSequence{s: s}, nil
}

func (is *IntegerSequence) seq() *sequence.Sequence[Elem] {
	if is == nil {
		return nil
	}
	return is.s
}

// Len returns the number of elements.
func (is *IntegerSequence) Len() int { return is.seq().Len() }

// Size returns the number of elements as a [sequence.Length].
func (is *IntegerSequence) Size() sequence.Length { return is.seq().Size() }

// Index returns the element at the index i.
// The caller must ensure 0 <= i < is.Len(), otherwise Index panics.
func (is *IntegerSequence) Index(i int) Elem { return is.s.Index(i) }

// Set stores v at the index i.
func (is *IntegerSequence) Set(i int, v Elem) { is.s.Set(i, v) }

// Ref returns a pointer to the element at the index i.
func (is *IntegerSequence) Ref(i int) *Elem { return is.s.Ref(i) }

// At returns the element at the index i or zero when i is out of range.
func (is *IntegerSequence) At(i int) Elem { return is.seq().At(i) }

// Lookup returns the element at the index i and whether i is in range.
func (is *IntegerSequence) Lookup(i int) (Elem, bool) { return is.seq().Lookup(i) }

// All returns an iterator over index-element pairs.
func (is *IntegerSequence) All() iter.Seq2[int, Elem] { return is.seq().All() }

// Values returns an iterator over elements.
func (is *IntegerSequence) Values() iter.Seq[Elem] { return is.seq().Values() }

// Slice returns a copy of the elements.
func (is *IntegerSequence) Slice() []Elem { return is.seq().Slice() }

// Clone returns a deep copy of the sequence.
// Cloning a nil sequence fails with [errorutil.ErrInvalidArgument].
func (is *IntegerSequence) Clone() (*IntegerSequence, error) {
	if is == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil integer sequence"))
	}
	if is.s == nil {
		return &IntegerSequence{}, nil
	}
	s, err := is.s.Clone()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &IntegerSequence{s: s}, nil
}

// AssignFrom makes is an element-wise copy of rhs.
// See [sequence.Sequence.AssignFrom].
func (is *IntegerSequence) AssignFrom(rhs *IntegerSequence) error {
	if rhs == is {
		return nil
	}
	if rhs == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil source sequence"))
	}

	src := rhs.s
	if src == nil {
		src = new(sequence.Sequence[Elem])
	}
	if is.s == nil {
		is.s = new(sequence.Sequence[Elem])
	}
	return errtrace.Wrap(is.s.AssignFrom(src))
}

// Equal reports whether val is an *IntegerSequence with the same elements.
func (is *IntegerSequence) Equal(val any) bool {
	other, ok := val.(*IntegerSequence)
	if !ok {
		return false
	}
	if is == other {
		return true
	}
	if is == nil || other == nil || is.Len() != other.Len() {
		return false
	}
	if is.Len() == 0 {
		return true
	}
	return is.s.Equal(other.s)
}

func (is *IntegerSequence) String() string { return is.seq().String() }

// LogValue implements [slog.LogValuer].
func (is *IntegerSequence) LogValue() slog.Value { return is.seq().LogValue() }
