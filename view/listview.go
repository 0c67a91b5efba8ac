package view

import (
	"github.com/rmullin7286/purely/maybe"
	"github.com/rmullin7286/purely/persistent/list"
)

// ListView presents a persistent list through the mutable List shape.
type ListView[T comparable] struct {
	cell ref[list.List[T]]
}

var _ List[int] = (*ListView[int])(nil)

// WrapList wraps a persistent list in a mutable view. The list is not
// copied; the view starts out sharing it with whoever else holds it.
func WrapList[T comparable](l list.List[T]) *ListView[T] {
	return &ListView[T]{cell: ref[list.List[T]]{value: l}}
}

// Value returns the current persistent value held by the view.
func (v *ListView[T]) Value() list.List[T] {
	return v.cell.get()
}

// swap replaces the held value and reports whether the element count
// changed.
func (v *ListView[T]) swap(next list.List[T]) bool {
	prev := v.cell.get()
	changed := next.Len() != prev.Len()
	tracer().Debugf("list view: %v -> %v (changed=%v)", prev, next, changed)
	v.cell.set(next)
	return changed
}

// --- Collection ------------------------------------------------------------

func (v *ListView[T]) Len() int {
	return v.cell.get().Len()
}

func (v *ListView[T]) IsEmpty() bool {
	return v.cell.get().IsEmpty()
}

func (v *ListView[T]) Contains(value T) bool {
	return v.cell.get().Contains(value)
}

func (v *ListView[T]) Slice() []T {
	return v.cell.get().Slice()
}

func (v *ListView[T]) Each(f func(T) bool) {
	v.cell.get().Each(f)
}

func (v *ListView[T]) Add(value T) bool {
	return v.swap(v.cell.get().Append(value))
}

func (v *ListView[T]) Remove(value T) bool {
	return v.swap(v.cell.get().Remove(value))
}

func (v *ListView[T]) AddAll(values ...T) bool {
	return v.swap(v.cell.get().AddAll(values...))
}

func (v *ListView[T]) RemoveAll(values ...T) bool {
	return v.swap(v.cell.get().RemoveAll(values...))
}

func (v *ListView[T]) RetainAll(values ...T) bool {
	return v.swap(v.cell.get().RetainAll(values...))
}

func (v *ListView[T]) Clear() {
	v.cell.update(list.List[T].Clear)
}

// --- Sequenced -------------------------------------------------------------

func (v *ListView[T]) AddFirst(value T) {
	v.cell.update(func(l list.List[T]) list.List[T] {
		return l.Prepend(value)
	})
}

func (v *ListView[T]) AddLast(value T) {
	v.cell.update(func(l list.List[T]) list.List[T] {
		return l.Append(value)
	})
}

func (v *ListView[T]) First() T {
	value, ok := maybe.Get(v.cell.get().First())
	assertThat(ok, "first element of empty list")
	return value
}

func (v *ListView[T]) Last() T {
	value, ok := maybe.Get(v.cell.get().Last())
	assertThat(ok, "last element of empty list")
	return value
}

func (v *ListView[T]) RemoveFirst() T {
	p, ok := maybe.Get(v.cell.get().RemoveFirst())
	assertThat(ok, "remove first element of empty list")
	v.cell.set(p.Second)
	return p.First
}

func (v *ListView[T]) RemoveLast() T {
	p, ok := maybe.Get(v.cell.get().RemoveLast())
	assertThat(ok, "remove last element of empty list")
	v.cell.set(p.Second)
	return p.First
}

// --- List ------------------------------------------------------------------

func (v *ListView[T]) Get(index int) T {
	value, ok := maybe.Get(v.cell.get().Get(index))
	assertThat(ok, "index out of bounds: %d with length %d", index, v.Len())
	return value
}

// Set replaces the element at index and returns the element previously
// there.
func (v *ListView[T]) Set(index int, value T) T {
	p, ok := maybe.Get(v.cell.get().GetAndSet(index, value))
	assertThat(ok, "index out of bounds: %d with length %d", index, v.Len())
	v.cell.set(p.Second)
	return p.First
}

func (v *ListView[T]) Insert(index int, value T) {
	next, ok := maybe.Get(v.cell.get().Insert(index, value))
	assertThat(ok, "insertion index out of bounds: %d with length %d", index, v.Len())
	v.cell.set(next)
}

// RemoveAt removes and returns the element at index.
func (v *ListView[T]) RemoveAt(index int) T {
	p, ok := maybe.Get(v.cell.get().RemoveAt(index))
	assertThat(ok, "index out of bounds: %d with length %d", index, v.Len())
	v.cell.set(p.Second)
	return p.First
}

func (v *ListView[T]) IndexOf(value T) int {
	return v.cell.get().IndexOf(value).WithDefault(-1)
}

func (v *ListView[T]) LastIndexOf(value T) int {
	return v.cell.get().LastIndexOf(value).WithDefault(-1)
}

// SubList returns the range [from, to) as a further mutable view with its
// own reference cell, not a snapshot slice. The two views mutate
// independently from there on.
func (v *ListView[T]) SubList(from, to int) List[T] {
	sub, ok := maybe.Get(v.cell.get().SubList(from, to))
	assertThat(ok, "sublist bounds out of range: [%d,%d) with length %d", from, to, v.Len())
	return WrapList(sub)
}

// ListIterator returns a bidirectional iterator over the current value. The
// iterator iterates that value; later mutations of the view do not show
// through.
func (v *ListView[T]) ListIterator() *list.ListIterator[T] {
	return v.cell.get().ListIterator()
}
