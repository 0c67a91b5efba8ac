package view

import (
	"github.com/rmullin7286/purely/maybe"
	"github.com/rmullin7286/purely/persistent/list"
	"github.com/rmullin7286/purely/persistent/queue"
)

// QueueView presents a persistent queue through the mutable Collection
// shape, plus the queue operations themselves. Add enqueues.
type QueueView[T comparable] struct {
	cell ref[queue.Queue[T]]
}

var _ Collection[int] = (*QueueView[int])(nil)

// WrapQueue wraps a persistent queue in a mutable view.
func WrapQueue[T comparable](q queue.Queue[T]) *QueueView[T] {
	return &QueueView[T]{cell: ref[queue.Queue[T]]{value: q}}
}

// Value returns the current persistent value held by the view.
func (v *QueueView[T]) Value() queue.Queue[T] {
	return v.cell.get()
}

func (v *QueueView[T]) swap(next queue.Queue[T]) bool {
	prev := v.cell.get()
	changed := next.Len() != prev.Len()
	v.cell.set(next)
	return changed
}

func (v *QueueView[T]) Len() int {
	return v.cell.get().Len()
}

func (v *QueueView[T]) IsEmpty() bool {
	return v.cell.get().IsEmpty()
}

func (v *QueueView[T]) Contains(value T) bool {
	return v.asList().Contains(value)
}

func (v *QueueView[T]) Slice() []T {
	return v.cell.get().Slice()
}

func (v *QueueView[T]) Each(f func(T) bool) {
	v.asList().Each(f)
}

func (v *QueueView[T]) Add(value T) bool {
	return v.swap(v.cell.get().Enqueue(value))
}

// Remove removes the first element equal to value, wherever it sits in the
// queue. The queue is rebuilt through its list rendering; FIFO order of the
// remaining elements is preserved.
func (v *QueueView[T]) Remove(value T) bool {
	return v.swap(fromList[T](v.asList().Remove(value)))
}

func (v *QueueView[T]) AddAll(values ...T) bool {
	next := v.cell.get()
	for _, value := range values {
		next = next.Enqueue(value)
	}
	return v.swap(next)
}

func (v *QueueView[T]) RemoveAll(values ...T) bool {
	return v.swap(fromList[T](v.asList().RemoveAll(values...)))
}

func (v *QueueView[T]) RetainAll(values ...T) bool {
	return v.swap(fromList[T](v.asList().RetainAll(values...)))
}

func (v *QueueView[T]) Clear() {
	v.cell.set(queue.Empty[T]())
}

// --- Queue operations ------------------------------------------------------

// Enqueue adds value at the end of the queue.
func (v *QueueView[T]) Enqueue(value T) {
	v.cell.update(func(q queue.Queue[T]) queue.Queue[T] {
		return q.Enqueue(value)
	})
}

// Dequeue removes and returns the element at the front, panicking on an
// empty queue.
func (v *QueueView[T]) Dequeue() T {
	p, ok := maybe.Get(v.cell.get().Dequeue())
	assertThat(ok, "dequeue from empty queue")
	v.cell.set(p.Second)
	return p.First
}

// Peek returns the element at the front without removing it, panicking on an
// empty queue.
func (v *QueueView[T]) Peek() T {
	value, ok := maybe.Get(v.cell.get().Peek())
	assertThat(ok, "peek into empty queue")
	return value
}

// asList renders the queue in FIFO order as a persistent list.
func (v *QueueView[T]) asList() list.List[T] {
	return list.FromSlice(v.cell.get().Slice())
}

func fromList[T comparable](l list.List[T]) queue.Queue[T] {
	return queue.Of(l.Slice()...)
}
