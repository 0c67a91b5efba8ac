package list

import (
	"fmt"

	"github.com/rmullin7286/purely"
	"github.com/rmullin7286/purely/maybe"
)

/*
All positional operations follow one decomposition pattern: walk index cells
from the head, accumulating the traversed prefix in reverse order (front),
leaving the remainder (rear) starting exactly at the target position. The
local edit happens at the head of rear, then rejoin prepends the accumulated
front back on, restoring the original order.
*/

// split decomposes a list at index. front holds the traversed prefix in
// reverse order, rear starts at position index. ok is false for a negative
// index or when the list is exhausted before index is reached; splitting at
// index == Len() succeeds with an empty rear.
func (l List[T]) split(index int) (front, rear List[T], ok bool) {
	if index < 0 {
		return front, rear, false
	}
	rear = l
	for i := 0; i < index; i++ {
		if rear.head == nil {
			return front, rear, false
		}
		front = front.Prepend(rear.head.value)
		rear = List[T]{head: rear.head.next}
	}
	return front, rear, true
}

// rejoin prepends a reversed front accumulator onto rear, undoing a split.
func rejoin[T comparable](front, rear List[T]) List[T] {
	for c := front.head; c != nil; c = c.next {
		rear = rear.Prepend(c.value)
	}
	return rear
}

// Get returns the element at index, or Nothing if index is out of range.
// O(index).
func (l List[T]) Get(index int) maybe.Maybe[T] {
	if index < 0 {
		return maybe.Nothing[T]()
	}
	i := index
	for c := l.head; c != nil; c = c.next {
		if i == 0 {
			return maybe.Just(c.value)
		}
		i--
	}
	return maybe.Nothing[T]()
}

// Set returns a list with the element at index replaced by value, or Nothing
// if index is out of range. The cells behind index are shared with the
// receiver. O(index).
func (l List[T]) Set(index int, value T) maybe.Maybe[List[T]] {
	front, rear, ok := l.split(index)
	if !ok || rear.head == nil {
		return maybe.Nothing[List[T]]()
	}
	rear = List[T]{head: &cell[T]{value: value, next: rear.head.next}}
	return maybe.Just(rejoin(front, rear))
}

// GetAndSet is Set returning also the element that was replaced.
func (l List[T]) GetAndSet(index int, value T) maybe.Maybe[purely.Pair[T, List[T]]] {
	front, rear, ok := l.split(index)
	if !ok || rear.head == nil {
		return maybe.Nothing[purely.Pair[T, List[T]]]()
	}
	old := rear.head.value
	rear = List[T]{head: &cell[T]{value: value, next: rear.head.next}}
	return maybe.Just(purely.P(old, rejoin(front, rear)))
}

// Insert returns a list with value inserted at index, shifting the elements
// from index on one position toward the end. Valid indices are 0 through
// Len() inclusive; inserting at Len() appends. O(index).
func (l List[T]) Insert(index int, value T) maybe.Maybe[List[T]] {
	front, rear, ok := l.split(index)
	if !ok {
		return maybe.Nothing[List[T]]()
	}
	return maybe.Just(rejoin(front, rear.Prepend(value)))
}

// InsertAll returns a list with the given values inserted at index, in
// order. Valid indices are 0 through Len() inclusive. O(index + k).
func (l List[T]) InsertAll(index int, values ...T) maybe.Maybe[List[T]] {
	front, rear, ok := l.split(index)
	if !ok {
		return maybe.Nothing[List[T]]()
	}
	for i := len(values) - 1; i >= 0; i-- {
		rear = rear.Prepend(values[i])
	}
	return maybe.Just(rejoin(front, rear))
}

// RemoveAt returns the element at index together with a list without it, or
// Nothing if index is out of range. O(index).
func (l List[T]) RemoveAt(index int) maybe.Maybe[purely.Pair[T, List[T]]] {
	front, rear, ok := l.split(index)
	if !ok || rear.head == nil {
		return maybe.Nothing[purely.Pair[T, List[T]]]()
	}
	return maybe.Just(purely.P(rear.head.value, rejoin(front, List[T]{head: rear.head.next})))
}

// SubList returns the elements of positions from (inclusive) through to
// (exclusive) as a new list. Nothing if from < 0, to < from, or either bound
// exceeds Len(). SubList(i, i) is the empty list for every valid i. O(to).
func (l List[T]) SubList(from, to int) maybe.Maybe[List[T]] {
	if from < 0 || to < from {
		return maybe.Nothing[List[T]]()
	}
	rear := l
	for i := 0; i < from; i++ {
		if rear.head == nil {
			return maybe.Nothing[List[T]]()
		}
		rear = List[T]{head: rear.head.next}
	}
	var ret List[T]
	for i := from; i < to; i++ {
		if rear.head == nil {
			return maybe.Nothing[List[T]]()
		}
		ret = ret.Prepend(rear.head.value)
		rear = List[T]{head: rear.head.next}
	}
	return maybe.Just(ret.Reverse())
}

// --- Strict forms ----------------------------------------------------------

// MustGet is Get, panicking on an out-of-range index.
func (l List[T]) MustGet(index int) T {
	v, ok := maybe.Get(l.Get(index))
	assertThat(ok, "index out of bounds: %d with length %d", index, l.Len())
	return v
}

// MustSet is Set, panicking on an out-of-range index.
func (l List[T]) MustSet(index int, value T) List[T] {
	ret, ok := maybe.Get(l.Set(index, value))
	assertThat(ok, "index out of bounds: %d with length %d", index, l.Len())
	return ret
}

// MustGetAndSet is GetAndSet, panicking on an out-of-range index.
func (l List[T]) MustGetAndSet(index int, value T) purely.Pair[T, List[T]] {
	ret, ok := maybe.Get(l.GetAndSet(index, value))
	assertThat(ok, "index out of bounds: %d with length %d", index, l.Len())
	return ret
}

// MustInsert is Insert, panicking on an out-of-range index.
func (l List[T]) MustInsert(index int, value T) List[T] {
	ret, ok := maybe.Get(l.Insert(index, value))
	assertThat(ok, "insertion index out of bounds: %d with length %d", index, l.Len())
	return ret
}

// MustInsertAll is InsertAll, panicking on an out-of-range index.
func (l List[T]) MustInsertAll(index int, values ...T) List[T] {
	ret, ok := maybe.Get(l.InsertAll(index, values...))
	assertThat(ok, "insertion index out of bounds: %d with length %d", index, l.Len())
	return ret
}

// MustRemoveAt is RemoveAt, panicking on an out-of-range index.
func (l List[T]) MustRemoveAt(index int) purely.Pair[T, List[T]] {
	ret, ok := maybe.Get(l.RemoveAt(index))
	assertThat(ok, "index out of bounds: %d with length %d", index, l.Len())
	return ret
}

// MustSubList is SubList, panicking on invalid bounds.
func (l List[T]) MustSubList(from, to int) List[T] {
	ret, ok := maybe.Get(l.SubList(from, to))
	assertThat(ok, "sublist bounds out of range: [%d,%d) with length %d", from, to, l.Len())
	return ret
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
