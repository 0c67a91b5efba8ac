package list

import (
	"fmt"
	"strings"

	"github.com/rmullin7286/purely"
	"github.com/rmullin7286/purely/maybe"
)

// List is a persistent singly linked list of elements of type T. The zero
// value is the empty list. A List is a pure value: it is safe to copy, share
// between goroutines and use as a map key.
//
// Whole-list scans are implemented iteratively, never by recursing on the
// tail, so no operation grows the call stack with the length of the list.
type List[T comparable] struct {
	head *cell[T]
}

// cell is one cons cell: an element plus the link to the remaining list.
// A cell is immutable once constructed; its next link is fixed for the cell's
// lifetime and may be shared by any number of lists.
type cell[T comparable] struct {
	value T
	next  *cell[T]
}

// Empty returns the empty list. All empty lists are equal; no allocation
// happens.
func Empty[T comparable]() List[T] {
	return List[T]{}
}

// Of builds a list containing the given values in order.
func Of[T comparable](values ...T) List[T] {
	var l List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Prepend(values[i])
	}
	return l
}

// FromSlice builds a list containing the elements of a slice, in order.
func FromSlice[T comparable](values []T) List[T] {
	return Of(values...)
}

// IsEmpty reports whether the list has no elements. O(1).
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements. O(n): the length is not stored, it is
// counted by walking the chain.
func (l List[T]) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Prepend returns a new list with value in front. The receiver is shared as
// the tail of the result, uncopied. O(1).
func (l List[T]) Prepend(value T) List[T] {
	return List[T]{head: &cell[T]{value: value, next: l.head}}
}

// Append returns a new list with value at the end. Every cell has to be
// recreated, since each one now leads toward the new tail. O(n).
func (l List[T]) Append(value T) List[T] {
	return l.Reverse().Prepend(value).Reverse()
}

// Reverse returns the list in reverse order. The result is an entirely new
// chain of cells. O(n).
func (l List[T]) Reverse() List[T] {
	var ret List[T]
	for c := l.head; c != nil; c = c.next {
		ret = ret.Prepend(c.value)
	}
	return ret
}

// First returns the first element, or Nothing for the empty list. O(1).
func (l List[T]) First() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Last returns the last element, or Nothing for the empty list. O(n).
func (l List[T]) Last() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	c := l.head
	for c.next != nil {
		c = c.next
	}
	return maybe.Just(c.value)
}

// Contains reports whether some element equals value. O(n).
func (l List[T]) Contains(value T) bool {
	for c := l.head; c != nil; c = c.next {
		if c.value == value {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the first element equal to value. O(n).
func (l List[T]) IndexOf(value T) maybe.Maybe[int] {
	i := 0
	for c := l.head; c != nil; c = c.next {
		if c.value == value {
			return maybe.Just(i)
		}
		i++
	}
	return maybe.Nothing[int]()
}

// LastIndexOf returns the position of the last element equal to value. O(n).
func (l List[T]) LastIndexOf(value T) maybe.Maybe[int] {
	ret := maybe.Nothing[int]()
	i := 0
	for c := l.head; c != nil; c = c.next {
		if c.value == value {
			ret = maybe.Just(i)
		}
		i++
	}
	return ret
}

// RemoveFirst splits the list into its first element and the remaining tail.
// The tail is shared, uncopied. O(1).
func (l List[T]) RemoveFirst() maybe.Maybe[purely.Pair[T, List[T]]] {
	if l.head == nil {
		return maybe.Nothing[purely.Pair[T, List[T]]]()
	}
	return maybe.Just(purely.P(l.head.value, List[T]{head: l.head.next}))
}

// RemoveLast splits the list into its last element and the list of all
// elements before it. O(n).
func (l List[T]) RemoveLast() maybe.Maybe[purely.Pair[T, List[T]]] {
	rev := l.Reverse()
	if rev.head == nil {
		return maybe.Nothing[purely.Pair[T, List[T]]]()
	}
	return maybe.Just(purely.P(rev.head.value, List[T]{head: rev.head.next}.Reverse()))
}

// Remove returns a list without the first element equal to value. The scan
// stops at the first match; the cells behind the match are shared with the
// receiver. If no element matches, the receiver itself is returned, identity
// included. O(n).
func (l List[T]) Remove(value T) List[T] {
	var front List[T]
	back := l
	for back.head != nil {
		head := back.head.value
		back = List[T]{head: back.head.next}
		if head == value {
			tracer().Debugf("remove: match for %v, splicing %d front cells", value, front.Len())
			return rejoin(front, back)
		}
		front = front.Prepend(head)
	}
	return l
}

// Concat returns a list holding the elements of l followed by the elements
// of other. The cells of other are shared, uncopied; the cells of l are
// recreated. O(len(l)).
func (l List[T]) Concat(other List[T]) List[T] {
	return rejoin(l.Reverse(), other)
}

// AddAll returns a list with the given values appended, in order. O(n+k).
func (l List[T]) AddAll(values ...T) List[T] {
	ret := l.Reverse()
	for _, v := range values {
		ret = ret.Prepend(v)
	}
	return ret.Reverse()
}

// RemoveAll removes, for each given value, the first element equal to it.
func (l List[T]) RemoveAll(values ...T) List[T] {
	ret := l
	for _, v := range values {
		ret = ret.Remove(v)
	}
	return ret
}

// RetainAll returns a list keeping only elements equal to one of the given
// values, preserving their order.
func (l List[T]) RetainAll(values ...T) List[T] {
	var ret List[T]
	for c := l.head; c != nil; c = c.next {
		for _, v := range values {
			if c.value == v {
				ret = ret.Prepend(c.value)
				break
			}
		}
	}
	return ret.Reverse()
}

// Clear returns the empty list.
func (l List[T]) Clear() List[T] {
	return List[T]{}
}

// Each calls f on every element, head to tail, stopping early if f returns
// false.
func (l List[T]) Each(f func(T) bool) {
	for c := l.head; c != nil; c = c.next {
		if !f(c.value) {
			return
		}
	}
}

// Slice copies the elements into a fresh slice, in order.
func (l List[T]) Slice() []T {
	var ret []T
	for c := l.head; c != nil; c = c.next {
		ret = append(ret, c.value)
	}
	return ret
}

// Equal reports element-wise equality of two lists.
func (l List[T]) Equal(other List[T]) bool {
	a, b := l.head, other.head
	for a != nil && b != nil {
		if a == b { // shared remainder
			return true
		}
		if a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for c := l.head; c != nil; c = c.next {
		if c != l.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", c.value)
	}
	b.WriteByte(']')
	return b.String()
}
