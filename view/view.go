package view

import (
	"fmt"

	"github.com/rmullin7286/purely/persistent/list"
)

// Collection is the mutating-collection shape every view implements.
// Mutators that report a bool tell whether the call changed the collection,
// detected conservatively by comparing sizes before and after: net
// insertions and deletions are detected, equal-size replacements are not.
type Collection[T comparable] interface {
	Len() int
	IsEmpty() bool
	Contains(value T) bool
	Slice() []T
	Each(f func(T) bool)
	Add(value T) bool
	Remove(value T) bool
	AddAll(values ...T) bool
	RemoveAll(values ...T) bool
	RetainAll(values ...T) bool
	Clear()
}

// Sequenced is a Collection with a defined encounter order and access to
// both ends. First, Last, RemoveFirst and RemoveLast panic on an empty
// collection.
type Sequenced[T comparable] interface {
	Collection[T]
	AddFirst(value T)
	AddLast(value T)
	First() T
	Last() T
	RemoveFirst() T
	RemoveLast() T
}

// List is a Sequenced collection with positional access. Positional methods
// panic on an out-of-range index.
type List[T comparable] interface {
	Sequenced[T]
	Get(index int) T
	Set(index int, value T) T
	Insert(index int, value T)
	RemoveAt(index int) T
	IndexOf(value T) int
	LastIndexOf(value T) int
	SubList(from, to int) List[T]
	ListIterator() *list.ListIterator[T]
}

// ref is the single-slot reference cell at the heart of every view. The view
// exclusively owns its cell; the persistent value inside may be shared.
type ref[C any] struct {
	value C
}

func (r *ref[C]) get() C {
	return r.value
}

func (r *ref[C]) set(v C) {
	r.value = v
}

func (r *ref[C]) update(f func(C) C) {
	r.set(f(r.get()))
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("view: "+msg, msgargs...)
		panic(msg)
	}
}
