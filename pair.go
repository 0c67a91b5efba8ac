package purely

import "fmt"

// Pair is a 2-tuple. Collection operations that produce a value together with
// a new collection — RemoveFirst, Dequeue, Pop and friends — return a Pair of
// the two.
type Pair[A, B any] struct {
	First  A
	Second B
}

// P constructs a Pair from its two components.
func P[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Decompose splits a pair into its components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.First, p.Second
}

// Swap returns the pair with its components exchanged.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
