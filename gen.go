package contiguous

import "golang.org/x/exp/constraints"

// Generator produces the element at index i of a sequence.
type Generator[T any] func(i int) T

// Zero returns a generator producing the zero value for T.
func Zero[T any]() Generator[T] {
	return func(int) T {
		var a T
		return a
	}
}

// Const returns a generator that produces a for every index.
func Const[T any](a T) Generator[T] {
	return func(int) T {
		return a
	}
}

// Iota returns a generator producing start, start+step, start+2*step, …
func Iota[N constraints.Integer | constraints.Float](start, step N) Generator[N] {
	return func(i int) N {
		return start + N(i)*step
	}
}

// Map returns a generator applying f to the elements of gen.
func Map[A, B any](gen Generator[A], f func(A) B) Generator[B] {
	return func(i int) B {
		return f(gen(i))
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
