/*
Package purely is a library of immutable, persistent collection types for Go,
together with adapters that bridge them into mutable-collection-shaped APIs.

The root package holds small functional building blocks shared by the
sub-packages: function helpers and the Pair product type which collection
operations use to return a value together with a new collection.

The collections themselves live in sub-packages:

  - persistent/list — a persistent singly linked list with positional operations
  - persistent/queue — a FIFO queue with amortized O(1) operations
  - persistent/stack — a LIFO stack
  - view — mutable views over the persistent types

Optional and fallible results are expressed with the maybe, result and either
packages rather than with errors or panics; the view package is the single
place where an absent result is translated into a panic.
*/
package purely

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
