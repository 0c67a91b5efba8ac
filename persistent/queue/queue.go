package queue

import (
	"github.com/rmullin7286/purely"
	"github.com/rmullin7286/purely/maybe"
	"github.com/rmullin7286/purely/persistent/list"
)

// Queue is a persistent FIFO queue. The zero value is the empty queue. A
// Queue is a pure value, safe to copy and to share between goroutines.
//
// Callers never observe a queue whose front is empty while its back is not
// and an element is requested: normalization happens lazily, right before an
// element would be read.
type Queue[T comparable] struct {
	front list.List[T]
	back  list.List[T]
}

// Empty returns the empty queue.
func Empty[T comparable]() Queue[T] {
	return Queue[T]{}
}

// Of builds a queue holding the given values, first value at the front.
func Of[T comparable](values ...T) Queue[T] {
	var q Queue[T]
	for _, v := range values {
		q = q.Enqueue(v)
	}
	return q
}

// Enqueue returns a queue with value added at the end. O(1).
func (q Queue[T]) Enqueue(value T) Queue[T] {
	return Queue[T]{front: q.front, back: q.back.Prepend(value)}
}

// normalize rebuilds front as reverse(back) when front has run empty.
// Normalization is observationally transparent; the result may be persisted
// or discarded.
func (q Queue[T]) normalize() Queue[T] {
	if !q.front.IsEmpty() || q.back.IsEmpty() {
		return q
	}
	tracer().Debugf("queue: rebuilding front from back %v", q.back)
	return Queue[T]{front: q.back.Reverse()}
}

// Dequeue returns the element at the front together with the queue without
// it, or Nothing for the empty queue. Amortized O(1).
func (q Queue[T]) Dequeue() maybe.Maybe[purely.Pair[T, Queue[T]]] {
	next := q.normalize()
	p, ok := maybe.Get(next.front.RemoveFirst())
	if !ok {
		return maybe.Nothing[purely.Pair[T, Queue[T]]]()
	}
	head, rest := p.Decompose()
	return maybe.Just(purely.P(head, Queue[T]{front: rest, back: next.back}))
}

// MustDequeue is Dequeue, panicking on the empty queue.
func (q Queue[T]) MustDequeue() purely.Pair[T, Queue[T]] {
	p, ok := maybe.Get(q.Dequeue())
	if !ok {
		panic("queue: dequeue from empty queue")
	}
	return p
}

// Peek returns the element at the front without removing it, or Nothing for
// the empty queue. The normalized state derived here is discarded.
func (q Queue[T]) Peek() maybe.Maybe[T] {
	return q.normalize().front.First()
}

// IsEmpty reports whether the queue has no elements. O(1).
func (q Queue[T]) IsEmpty() bool {
	return q.front.IsEmpty() && q.back.IsEmpty()
}

// Len returns the number of elements. O(n).
func (q Queue[T]) Len() int {
	return q.front.Len() + q.back.Len()
}

// Slice copies the elements into a fresh slice, front of the queue first.
func (q Queue[T]) Slice() []T {
	return append(q.front.Slice(), q.back.Reverse().Slice()...)
}

// Equal reports whether two queues hold the same elements in the same order.
// The front/back split is an internal matter and does not take part in the
// comparison.
func (q Queue[T]) Equal(other Queue[T]) bool {
	return q.front.Concat(q.back.Reverse()).Equal(other.front.Concat(other.back.Reverse()))
}

func (q Queue[T]) String() string {
	return q.front.Concat(q.back.Reverse()).String()
}
