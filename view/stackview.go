package view

import (
	"github.com/rmullin7286/purely/maybe"
	"github.com/rmullin7286/purely/persistent/list"
	"github.com/rmullin7286/purely/persistent/stack"
)

// StackView presents a persistent stack through the mutable Collection
// shape, plus the stack operations themselves. Add pushes; iteration order
// is top-first.
type StackView[T comparable] struct {
	cell ref[stack.Stack[T]]
}

var _ Collection[int] = (*StackView[int])(nil)

// WrapStack wraps a persistent stack in a mutable view.
func WrapStack[T comparable](s stack.Stack[T]) *StackView[T] {
	return &StackView[T]{cell: ref[stack.Stack[T]]{value: s}}
}

// Value returns the current persistent value held by the view.
func (v *StackView[T]) Value() stack.Stack[T] {
	return v.cell.get()
}

func (v *StackView[T]) swap(next stack.Stack[T]) bool {
	prev := v.cell.get()
	changed := next.Len() != prev.Len()
	v.cell.set(next)
	return changed
}

func (v *StackView[T]) Len() int {
	return v.cell.get().Len()
}

func (v *StackView[T]) IsEmpty() bool {
	return v.cell.get().IsEmpty()
}

func (v *StackView[T]) Contains(value T) bool {
	return v.asList().Contains(value)
}

func (v *StackView[T]) Slice() []T {
	return v.cell.get().Slice()
}

func (v *StackView[T]) Each(f func(T) bool) {
	v.asList().Each(f)
}

func (v *StackView[T]) Add(value T) bool {
	return v.swap(v.cell.get().Push(value))
}

// Remove removes the first element equal to value, counting from the top of
// the stack.
func (v *StackView[T]) Remove(value T) bool {
	return v.swap(fromStackList[T](v.asList().Remove(value)))
}

func (v *StackView[T]) AddAll(values ...T) bool {
	next := v.cell.get()
	for _, value := range values {
		next = next.Push(value)
	}
	return v.swap(next)
}

func (v *StackView[T]) RemoveAll(values ...T) bool {
	return v.swap(fromStackList[T](v.asList().RemoveAll(values...)))
}

func (v *StackView[T]) RetainAll(values ...T) bool {
	return v.swap(fromStackList[T](v.asList().RetainAll(values...)))
}

func (v *StackView[T]) Clear() {
	v.cell.set(stack.Empty[T]())
}

// --- Stack operations ------------------------------------------------------

// Push puts value on top of the stack.
func (v *StackView[T]) Push(value T) {
	v.cell.update(func(s stack.Stack[T]) stack.Stack[T] {
		return s.Push(value)
	})
}

// Pop removes and returns the top element, panicking on an empty stack.
func (v *StackView[T]) Pop() T {
	p, ok := maybe.Get(v.cell.get().Pop())
	assertThat(ok, "pop from empty stack")
	v.cell.set(p.Second)
	return p.First
}

// Peek returns the top element without removing it, panicking on an empty
// stack.
func (v *StackView[T]) Peek() T {
	value, ok := maybe.Get(v.cell.get().Peek())
	assertThat(ok, "peek into empty stack")
	return value
}

// asList renders the stack top-first as a persistent list.
func (v *StackView[T]) asList() list.List[T] {
	return list.FromSlice(v.cell.get().Slice())
}

// fromStackList rebuilds a stack from its top-first list rendering.
func fromStackList[T comparable](l list.List[T]) stack.Stack[T] {
	return stack.Of(l.Reverse().Slice()...)
}
