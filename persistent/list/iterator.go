package list

import (
	"github.com/rmullin7286/purely/maybe"
)

// Iterator walks a list from head to tail. An iterator is forward-only and
// cannot be restarted mid-stream; obtain a fresh one from Iter to start over
// from the original list value.
type Iterator[T comparable] struct {
	cur *cell[T]
}

// Iter returns a fresh iterator positioned at the head of the list.
func (l List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{cur: l.head}
}

// HasNext reports whether another element remains.
func (it *Iterator[T]) HasNext() bool {
	return it.cur != nil
}

// Next returns the next element; ok is false once the iterator is exhausted.
func (it *Iterator[T]) Next() (value T, ok bool) {
	if it.cur == nil {
		return value, false
	}
	value = it.cur.value
	it.cur = it.cur.next
	return value, true
}

// ListIterator traverses a list in both directions. It keeps two lists:
// front holds the already-visited elements nearest-first, rear the elements
// not yet visited. Next moves one cell from rear to front, Previous moves it
// back, so each step is O(1) without re-deriving the position from scratch.
type ListIterator[T comparable] struct {
	front List[T]
	rear  List[T]
	index int
}

// ListIterator returns a bidirectional iterator positioned before the first
// element.
func (l List[T]) ListIterator() *ListIterator[T] {
	return &ListIterator[T]{rear: l}
}

// ListIteratorAt returns a bidirectional iterator positioned before the
// element at index. Seeding costs O(index). Nothing if index is negative or
// exceeds Len(); index == Len() is valid and yields an iterator at the end.
func (l List[T]) ListIteratorAt(index int) maybe.Maybe[*ListIterator[T]] {
	if index < 0 {
		return maybe.Nothing[*ListIterator[T]]()
	}
	it := l.ListIterator()
	for i := 0; i < index; i++ {
		if _, ok := it.Next(); !ok {
			return maybe.Nothing[*ListIterator[T]]()
		}
	}
	return maybe.Just(it)
}

// HasNext reports whether a Next element exists.
func (it *ListIterator[T]) HasNext() bool {
	return !it.rear.IsEmpty()
}

// Next returns the element after the cursor and advances; ok is false at the
// end of the list.
func (it *ListIterator[T]) Next() (value T, ok bool) {
	if it.rear.head == nil {
		return value, false
	}
	value = it.rear.head.value
	it.front = it.front.Prepend(value)
	it.rear = List[T]{head: it.rear.head.next}
	it.index++
	return value, true
}

// HasPrevious reports whether a Previous element exists.
func (it *ListIterator[T]) HasPrevious() bool {
	return !it.front.IsEmpty()
}

// Previous returns the element before the cursor and moves back; ok is false
// at the start of the list.
func (it *ListIterator[T]) Previous() (value T, ok bool) {
	if it.front.head == nil {
		return value, false
	}
	value = it.front.head.value
	it.front = List[T]{head: it.front.head.next}
	it.rear = it.rear.Prepend(value)
	it.index--
	return value, true
}

// NextIndex returns the index of the element a call to Next would return.
func (it *ListIterator[T]) NextIndex() int {
	return it.index
}

// PreviousIndex returns the index of the element a call to Previous would
// return.
func (it *ListIterator[T]) PreviousIndex() int {
	return it.index - 1
}
