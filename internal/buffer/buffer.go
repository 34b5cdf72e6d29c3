// Package buffer provides owned contiguous buffers with fallible allocation.
//
// An allocation is admitted by an [Allocator] before any memory is requested.
// Refused requests and requests the runtime rejects as too large are reported
// as [ErrAllocationFailure]. A request that passes admission but cannot be
// backed by the operating system is still fatal to the process, so the
// [Heap] limit has to stay below the memory actually available.
package buffer

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../testutil/buffermock/allocator.go -package=buffermock . Allocator

import (
	"math"
	"math/bits"
	"runtime"
	"runtime/debug"
	"unsafe"

	"braces.dev/errtrace"

	"github.com/ghettovoice/goseq/internal/errorutil"
)

// ErrAllocationFailure is returned when a buffer of the requested size cannot be allocated.
const ErrAllocationFailure errorutil.Error = "allocation failure"

// NewAllocationError creates a new error with [ErrAllocationFailure] or
// wraps provided error with [ErrAllocationFailure].
func NewAllocationError(args ...any) error {
	return errorutil.NewWrapperError(ErrAllocationFailure, args...) //errtrace:skip
}

// DefaultMaxBytes is the byte limit of a single allocation served by the zero [Heap].
// A lower soft memory limit set with GOMEMLIMIT or [debug.SetMemoryLimit] takes precedence.
const DefaultMaxBytes uint64 = 4 << 30

// Allocator decides whether a request of n elements, elemSize bytes each, can be served.
type Allocator interface {
	Admit(n int, elemSize uintptr) error
}

// Heap admits requests whose total byte size fits into MaxBytes.
// Zero MaxBytes means the lesser of [DefaultMaxBytes] and the runtime soft memory limit.
type Heap struct {
	MaxBytes uint64
}

// Limit returns the byte limit of a single allocation.
func (h Heap) Limit() uint64 {
	if h.MaxBytes != 0 {
		return h.MaxBytes
	}
	limit := DefaultMaxBytes
	if ml := debug.SetMemoryLimit(-1); ml > 0 && ml != math.MaxInt64 && uint64(ml) < limit {
		limit = uint64(ml)
	}
	return limit
}

// Admit implements [Allocator].
func (h Heap) Admit(n int, elemSize uintptr) error {
	if n < 0 {
		return errtrace.Wrap(NewAllocationError("negative element count %d", n))
	}

	hi, size := bits.Mul64(uint64(n), uint64(elemSize))
	if hi != 0 {
		return errtrace.Wrap(NewAllocationError("byte size of %d elements of %d bytes overflows", n, elemSize))
	}

	if limit := h.Limit(); size > limit {
		return errtrace.Wrap(NewAllocationError("%d bytes exceed the limit of %d bytes", size, limit))
	}
	return nil
}

// Buffer is an owned handle to a contiguous block of elements.
// The zero value is an empty buffer.
type Buffer[T any] struct {
	data []T
}

// Alloc returns a buffer of n zero-valued elements.
// A nil allocator means the zero [Heap].
// On failure the returned buffer is empty and the error matches [ErrAllocationFailure].
func Alloc[T any](a Allocator, n int) (buf Buffer[T], err error) {
	if a == nil {
		a = Heap{}
	}

	var zero T
	if err := a.Admit(n, unsafe.Sizeof(zero)); err != nil {
		return Buffer[T]{}, errtrace.Wrap(NewAllocationError(err))
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = Buffer[T]{}, errtrace.Wrap(NewAllocationError(rerr))
		}
	}()

	return Buffer[T]{data: make([]T, n)}, nil
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Data returns the elements of the buffer.
// The slice aliases the buffer and must not outlive its owner.
func (b *Buffer[T]) Data() []T { return b.data }

// CopyFrom copies elements of src into b starting at the index off.
// It returns the number of copied elements.
func (b *Buffer[T]) CopyFrom(off int, src []T) int { return copy(b.data[off:], src) }

// Release drops the elements of the buffer, leaving it empty.
func (b *Buffer[T]) Release() {
	clear(b.data)
	b.data = nil
}
