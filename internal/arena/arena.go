// Package arena provides append-only dense stores that assign stable typed
// indices to allocated values. Cross-references between semantic entities are
// modeled as these indices rather than pointers, which keeps every identity
// copyable, comparable and usable as a map key.
package arena

import "fmt"

// Idx is a dense, typed index into an Arena[T]. An Idx is only meaningful
// relative to the arena that produced it.
type Idx[T any] uint32

// Raw returns the underlying numeric value of the index.
func (i Idx[T]) Raw() uint32 { return uint32(i) }

// Arena is an append-only store of T. Allocated values are never moved or
// removed, so indices stay valid for the arena's lifetime.
type Arena[T any] struct {
	data []T
}

// Alloc appends value and returns its index.
func (a *Arena[T]) Alloc(value T) Idx[T] {
	idx := Idx[T](len(a.data))
	a.data = append(a.data, value)
	return idx
}

// Get returns a pointer to the value at idx. Panics if idx was not produced
// by this arena.
func (a *Arena[T]) Get(idx Idx[T]) *T {
	return &a.data[idx]
}

// Len returns the number of allocated values.
func (a *Arena[T]) Len() int { return len(a.data) }

// NextIdx returns the index the next Alloc call will assign.
func (a *Arena[T]) NextIdx() Idx[T] { return Idx[T](len(a.data)) }

// Each calls f for every allocated value in allocation order.
func (a *Arena[T]) Each(f func(Idx[T], *T)) {
	for i := range a.data {
		f(Idx[T](i), &a.data[i])
	}
}

// IdxRange is a contiguous half-open [Start, End) range of indices into one
// arena, captured by snapshotting the arena length before and after a batch
// of allocations.
type IdxRange[T any] struct {
	Start Idx[T]
	End   Idx[T]
}

// NewIdxRange creates the range [start, end).
func NewIdxRange[T any](start, end Idx[T]) IdxRange[T] {
	if end < start {
		panic(fmt.Sprintf("arena: invalid range [%d, %d)", start, end))
	}
	return IdxRange[T]{Start: start, End: end}
}

// Len returns the number of indices in the range.
func (r IdxRange[T]) Len() int { return int(r.End - r.Start) }

// Contains reports whether idx falls inside the range.
func (r IdxRange[T]) Contains(idx Idx[T]) bool {
	return idx >= r.Start && idx < r.End
}

// Each calls f for every index in the range, in order.
func (r IdxRange[T]) Each(f func(Idx[T])) {
	for i := r.Start; i < r.End; i++ {
		f(i)
	}
}

// Indices returns the range as a slice of indices, in order.
func (r IdxRange[T]) Indices() []Idx[T] {
	out := make([]Idx[T], 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		out = append(out, i)
	}
	return out
}
