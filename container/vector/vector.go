package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vector/container/arrayptr"
)

// Vector is a growable sequence of T backed by one owned block.
// The zero value is an empty Vector ready to use. A Vector must not be
// copied by value; use Clone or Move.
type Vector[T any] struct {
	storage  arrayptr.ArrayPtr[T]
	size     int
	capacity int
}

// New returns an empty Vector with no backing block.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a Vector of n zero-valued elements with capacity n.
// Negative n is treated as 0.
func WithSize[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	if n > 0 {
		v.storage.Reset(make([]T, n))
		v.size, v.capacity = n, n
	}
	return v
}

// Filled returns a Vector of n copies of value with capacity n.
func Filled[T any](n int, value T) *Vector[T] {
	v := WithSize[T](n)
	data := v.storage.Raw()
	for i := range data {
		data[i] = value
	}
	return v
}

// Of returns a Vector holding values in order, with capacity len(values).
// The values are copied; the argument slice is not retained.
func Of[T any](values ...T) *Vector[T] {
	v := WithSize[T](len(values))
	copy(v.storage.Raw(), values)
	return v
}

// FromHint returns an empty Vector with exactly h.Capacity() slots reserved.
func FromHint[T any](h CapacityHint) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(h.Capacity())
	return v
}

// Clone returns an independent copy with the same size and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	if v.capacity > 0 {
		block := make([]T, v.capacity)
		copy(block, v.Data())
		c.storage.Reset(block)
	}
	c.size, c.capacity = v.size, v.capacity
	return c
}

// Move returns a new Vector that owns v's block and counters. v is left
// empty with zero capacity and remains usable.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{}
	m.MoveFrom(v)
	return m
}

// MoveFrom releases v's block, takes over src's block and counters, and
// leaves src empty. Moving from v itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == nil || src == v {
		return
	}
	v.storage.MoveFrom(&src.storage)
	v.size, v.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
}

// Assign replaces v's contents with an independent copy of src, including
// its capacity. Assigning v to itself is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if src == nil || src == v {
		return
	}
	c := src.Clone()
	v.Swap(c)
	c.storage.Free()
}

// Swap exchanges the blocks and counters of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.storage.Swap(&other.storage)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether v has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Data returns the live elements as a slice sharing v's block.
// The slice is invalidated by any call that reallocates or shifts storage.
func (v *Vector[T]) Data() []T {
	return v.storage.Raw()[:v.size:v.size]
}

// Reserve grows the capacity to exactly n when n exceeds it, keeping the
// live elements in order. It never shrinks and never changes Len.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.realloc(n)
	}
}

// Resize sets the number of live elements to n.
//
// Growing past the capacity reallocates to exactly 2*n slots. Growing within
// the capacity zeroes the newly exposed slots in place. Shrinking only
// lowers Len and keeps the block. Negative n is treated as 0.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n > v.capacity:
		v.realloc(n * 2)
	case n > v.size:
		clear(v.storage.Raw()[v.size:n])
	}
	v.size = n
}

// Clear sets Len to 0. Capacity and the block are left untouched.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Get returns element i. The caller must ensure 0 <= i < Len; the index is
// only checked against the capacity by the runtime.
func (v *Vector[T]) Get(i int) T {
	return v.storage.Raw()[i]
}

// Set stores value at index i under the same precondition as Get.
func (v *Vector[T]) Set(i int, value T) {
	v.storage.Raw()[i] = value
}

// Ref returns a pointer to element i under the same precondition as Get.
func (v *Vector[T]) Ref(i int) *T {
	return &v.storage.Raw()[i]
}

// At returns element i, or an *IndexError when i is outside [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, outOfRange("At", i, v.size)
	}
	return v.storage.Raw()[i], nil
}

// RefAt returns a pointer to element i, or an *IndexError when i is
// outside [0, Len).
func (v *Vector[T]) RefAt(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange("RefAt", i, v.size)
	}
	return &v.storage.Raw()[i], nil
}

// SetAt stores value at index i, or returns an *IndexError when i is
// outside [0, Len) and leaves v unchanged.
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return outOfRange("SetAt", i, v.size)
	}
	v.storage.Raw()[i] = value
	return nil
}

// Front returns the first element, or an *IndexError when v is empty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, outOfRange("Front", 0, 0)
	}
	return v.storage.Raw()[0], nil
}

// Back returns the last element, or an *IndexError when v is empty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, outOfRange("Back", -1, 0)
	}
	return v.storage.Raw()[v.size-1], nil
}

// PushBack appends value, growing like Resize(Len()+1).
func (v *Vector[T]) PushBack(value T) {
	i := v.size
	v.Resize(v.size + 1)
	v.storage.Raw()[i] = value
}

// PopBack removes the last element. The capacity is kept.
// It panics when v is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic(outOfRange("PopBack", -1, 0))
	}
	v.size--
	var zero T
	v.storage.Raw()[v.size] = zero
}

// Erase removes the element at pos, shifting the following elements one
// slot left, and returns the position now holding the next element.
// It panics when pos is outside [Begin, End).
func (v *Vector[T]) Erase(pos Iterator) Iterator {
	i := int(pos)
	if i < 0 || i >= v.size {
		panic(outOfRange("Erase", i, v.size))
	}
	data := v.storage.Raw()
	copy(data[i:v.size-1], data[i+1:v.size])
	v.size--
	var zero T
	data[v.size] = zero
	return pos
}

// Insert places value before pos, shifting the suffix one slot right, and
// returns the position of the inserted element. pos == End appends.
// Growth follows Resize. It panics when pos is outside [Begin, End].
func (v *Vector[T]) Insert(pos Iterator, value T) Iterator {
	i := int(pos)
	if i < 0 || i > v.size {
		panic(outOfRange("Insert", i, v.size))
	}
	n := v.size
	v.Resize(n + 1)
	data := v.storage.Raw()
	copy(data[i+1:n+1], data[i:n])
	data[i] = value
	return pos
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

// realloc moves the live elements into a fresh block of exactly capacity
// slots. The new block is fully built before the old one is freed.
func (v *Vector[T]) realloc(capacity int) {
	block := make([]T, capacity)
	copy(block, v.Data())
	v.storage.Reset(block)
	v.capacity = capacity
}
