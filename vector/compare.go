package vector

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal returns true if a and b have the same length and equal elements, in order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare compares a and b lexicographically. The first pair of unequal elements
// decides; if one vector is a prefix of the other, the shorter one is less.
// The result is -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is like Compare, but compares elements with cmp.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmp)
}

// CompareWith is like CompareFunc, using a gods comparator.
func CompareWith[T any](a, b *Vector[T], cmp utils.Comparator) int {
	return CompareFunc(a, b, func(x, y T) int {
		return cmp(x, y)
	})
}

func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}
