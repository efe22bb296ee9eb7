package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements in
// index order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return a.Len() == b.Len() && slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return a.Len() == b.Len() && slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is like Compare but orders elements with compare.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), compare)
}

// Less reports whether a sorts lexicographically before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Greater reports whether a sorts after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b) && NotEqual(a, b)
}

// LessOrEqual reports whether a does not sort after b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Greater(a, b)
}

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
