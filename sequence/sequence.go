// Package sequence implements a fixed-size sequence of values with value semantics.
//
// A [Sequence] exclusively owns its storage. Copies are made explicitly with
// [Sequence.Clone] or [Sequence.AssignFrom] and never share storage with
// their source. Operations that allocate report [ErrAllocationFailure] when
// the requested byte size exceeds the allocation limit (4 GiB by default,
// lowered by a soft memory limit set with GOMEMLIMIT), and a failed
// [Sequence.AssignFrom] leaves the destination unchanged. Memory exhaustion
// below that limit is fatal to the process as for any Go allocation.
//
// Sequences are not safe for concurrent use.
package sequence

//go:generate go tool errtrace -w .

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/goseq/internal/buffer"
	"github.com/ghettovoice/goseq/internal/errorutil"
	"github.com/ghettovoice/goseq/internal/util"
	"github.com/ghettovoice/goseq/magnitude"
)

// ErrAllocationFailure is returned when storage for a sequence cannot be allocated.
const ErrAllocationFailure = buffer.ErrAllocationFailure

// Size is the domain of sequence lengths.
type Size struct{}

func (Size) DomainName() string { return "sequence size" }

// Length is a validated non-negative sequence length.
type Length = magnitude.Magnitude[int, Size]

// NewLength returns a sequence length of n.
// It fails with [magnitude.ErrInvalidMagnitude] when n is negative.
func NewLength(n int) (Length, error) {
	return errtrace.Wrap2(magnitude.New[Size](n))
}

// MustLength is like [NewLength] but panics on error.
func MustLength(n int) Length { return magnitude.Must[Size](n) }

// noCopy makes go vet report copies of the structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Sequence is a contiguous fixed-size sequence of elements of type T.
//
// The zero value is an empty sequence ready to use.
// A Sequence must not be copied by value, use [Sequence.Clone] instead.
type Sequence[T comparable] struct {
	_     noCopy
	alloc buffer.Allocator
	buf   buffer.Buffer[T]
}

// New returns a sequence of count zero-valued elements.
func New[T comparable](count Length) (*Sequence[T], error) {
	return errtrace.Wrap2(newSequence[T](nil, count.Get()))
}

// FromSlice returns a sequence holding a copy of vals.
func FromSlice[T comparable](vals ...T) (*Sequence[T], error) {
	s, err := newSequence[T](nil, len(vals))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	s.buf.CopyFrom(0, vals)
	return s, nil
}

func newSequence[T comparable](alloc buffer.Allocator, n int) (*Sequence[T], error) {
	buf, err := buffer.Alloc[T](alloc, n)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Sequence[T]{alloc: alloc, buf: buf}, nil
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.buf.Len()
}

// Size returns the number of elements as a [Length].
func (s *Sequence[T]) Size() Length { return MustLength(s.Len()) }

// Index returns the element at the index i.
// The caller must ensure 0 <= i < s.Len(), otherwise Index panics.
func (s *Sequence[T]) Index(i int) T { return s.buf.Data()[i] }

// Set stores v at the index i under the same precondition as [Sequence.Index].
func (s *Sequence[T]) Set(i int, v T) { s.buf.Data()[i] = v }

// Ref returns a pointer to the element at the index i under the same precondition as [Sequence.Index].
// The pointer is valid until the next reallocating [Sequence.AssignFrom].
func (s *Sequence[T]) Ref(i int) *T { return &s.buf.Data()[i] }

// At returns the element at the index i or the zero value of T when i is out of range.
//
// A zero result is ambiguous, use [Sequence.Lookup] to tell an out of range
// index apart from a stored zero value.
func (s *Sequence[T]) At(i int) T {
	v, _ := s.Lookup(i)
	return v
}

// Lookup returns the element at the index i.
// The second return value is false when i is out of range.
func (s *Sequence[T]) Lookup(i int) (T, bool) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, false
	}
	return s.buf.Data()[i], true
}

// All returns an iterator over index-element pairs in index order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.Len() {
			if !yield(i, s.buf.Data()[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over elements in index order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (s *Sequence[T]) Slice() []T {
	if s.Len() == 0 {
		return nil
	}
	return slices.Clone(s.buf.Data())
}

// Clone returns a deep copy of the sequence.
// The copy uses new storage, mutating it never affects s.
// Cloning a nil sequence fails with [errorutil.ErrInvalidArgument].
func (s *Sequence[T]) Clone() (*Sequence[T], error) {
	if s == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil sequence"))
	}

	s2, err := newSequence[T](s.alloc, s.Len())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	s2.buf.CopyFrom(0, s.buf.Data())
	return s2, nil
}

// AssignFrom makes s an element-wise copy of rhs.
//
// When the lengths differ, new storage is allocated before s is touched.
// If the allocation fails, s is left unchanged and the error matches
// [ErrAllocationFailure]. Assigning a sequence to itself is a no-op.
func (s *Sequence[T]) AssignFrom(rhs *Sequence[T]) error {
	if rhs == s {
		return nil
	}
	if rhs == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil source sequence"))
	}

	if rhs.Len() != s.Len() {
		buf, err := buffer.Alloc[T](s.alloc, rhs.Len())
		if err != nil {
			return errtrace.Wrap(err)
		}
		buf.CopyFrom(0, rhs.buf.Data())

		s.buf.Release()
		s.buf = buf
		return nil
	}

	s.buf.CopyFrom(0, rhs.buf.Data())
	return nil
}

// Equal reports whether val is a *Sequence[T] with the same length and
// pairwise equal elements.
func (s *Sequence[T]) Equal(val any) bool {
	other, ok := val.(*Sequence[T])
	if !ok {
		return false
	}
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.Len() != other.Len() {
		return false
	}
	return slices.Equal(s.buf.Data(), other.buf.Data())
}

// Concat returns a new sequence with the elements of lhs followed by the elements of rhs.
// Neither input is modified.
func Concat[T comparable](lhs, rhs *Sequence[T]) (*Sequence[T], error) {
	m, n := lhs.Len(), rhs.Len()
	if m > math.MaxInt-n {
		return nil, errtrace.Wrap(buffer.NewAllocationError("length %d + %d overflows", m, n))
	}

	var alloc buffer.Allocator
	if lhs != nil {
		alloc = lhs.alloc
	}
	out, err := newSequence[T](alloc, m+n)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if m > 0 {
		out.buf.CopyFrom(0, lhs.buf.Data())
	}
	if n > 0 {
		out.buf.CopyFrom(m, rhs.buf.Data())
	}
	return out, nil
}

const maxRenderedElems = 32

func (s *Sequence[T]) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	s.renderTo(sb, s.Len())
	return sb.String()
}

func (s *Sequence[T]) renderTo(sb *strings.Builder, limit int) {
	sb.WriteByte('[')
	for i, v := range s.All() {
		if i == limit {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(sb, v)
	}
	sb.WriteByte(']')
}

// LogValue implements [slog.LogValuer].
// Long sequences are rendered partially.
func (s *Sequence[T]) LogValue() slog.Value {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	s.renderTo(sb, maxRenderedElems)
	return slog.GroupValue(
		slog.Int("len", s.Len()),
		slog.String("elems", sb.String()),
	)
}
