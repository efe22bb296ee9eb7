package vector

import "iter"

// Iterator is a position in a Vector's live range. Begin and End bound the
// range; arithmetic such as v.Begin()+2 addresses later elements.
// An Iterator is valid until the next call that mutates the Vector.
type Iterator int

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() Iterator {
	return 0
}

// End returns the position one past the last element.
// For an empty Vector, End equals Begin.
func (v *Vector[T]) End() Iterator {
	return Iterator(v.size)
}

// All yields index/value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.Data() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values yields the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.Data() {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := v.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}
