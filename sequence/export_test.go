package sequence

import "github.com/ghettovoice/goseq/internal/buffer"

// NewWithAllocator is like [New] but serves every allocation of the sequence with alloc.
func NewWithAllocator[T comparable](alloc buffer.Allocator, count Length) (*Sequence[T], error) {
	return newSequence[T](alloc, count.Get())
}
