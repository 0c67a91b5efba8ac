// Package stack implements a persistent LIFO stack. It is a direct wrapper
// around the persistent list: Push prepends, Pop removes the first element.
// Included for naming clarity; all algorithmic content lives in package list.
package stack

import (
	"github.com/rmullin7286/purely"
	"github.com/rmullin7286/purely/maybe"
	"github.com/rmullin7286/purely/persistent/list"
)

// Stack is a persistent LIFO stack. The zero value is the empty stack. A
// Stack is a pure value, safe to copy and to share between goroutines.
type Stack[T comparable] struct {
	items list.List[T]
}

// Empty returns the empty stack.
func Empty[T comparable]() Stack[T] {
	return Stack[T]{}
}

// Of builds a stack by pushing the given values in order; the last value
// ends up on top.
func Of[T comparable](values ...T) Stack[T] {
	var s Stack[T]
	for _, v := range values {
		s = s.Push(v)
	}
	return s
}

// Push returns a stack with value on top. O(1).
func (s Stack[T]) Push(value T) Stack[T] {
	return Stack[T]{items: s.items.Prepend(value)}
}

// Pop returns the top element together with the stack without it, or Nothing
// for the empty stack. O(1).
func (s Stack[T]) Pop() maybe.Maybe[purely.Pair[T, Stack[T]]] {
	return maybe.Map(func(p purely.Pair[T, list.List[T]]) purely.Pair[T, Stack[T]] {
		return purely.P(p.First, Stack[T]{items: p.Second})
	}, s.items.RemoveFirst())
}

// MustPop is Pop, panicking on the empty stack.
func (s Stack[T]) MustPop() purely.Pair[T, Stack[T]] {
	p, ok := maybe.Get(s.Pop())
	if !ok {
		panic("stack: pop from empty stack")
	}
	return p
}

// Peek returns the top element without removing it, or Nothing for the empty
// stack. O(1).
func (s Stack[T]) Peek() maybe.Maybe[T] {
	return s.items.First()
}

// IsEmpty reports whether the stack has no elements. O(1).
func (s Stack[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}

// Len returns the number of elements. O(n).
func (s Stack[T]) Len() int {
	return s.items.Len()
}

// Slice copies the elements into a fresh slice, top of the stack first.
func (s Stack[T]) Slice() []T {
	return s.items.Slice()
}

// Equal reports element-wise equality of two stacks.
func (s Stack[T]) Equal(other Stack[T]) bool {
	return s.items.Equal(other.items)
}

func (s Stack[T]) String() string {
	return s.items.String()
}
