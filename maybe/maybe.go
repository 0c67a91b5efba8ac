/*
Package maybe provides an optional value: a Maybe[T] either holds a value of
type T (Just) or holds nothing (Nothing).

The persistent collections in this module return a Maybe wherever an operation
may come up empty — reading from an empty list, indexing out of range — instead
of raising an error. Callers unwrap a Maybe by pattern matching:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		// v holds the value
	case m.Nothing():
		// x was empty
	}

or by one of the helpers WithDefault and Get.
*/
package maybe

// Maybe either holds a value of type T, or nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsJust() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value in a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromPair converts Go's comma-ok idiom into a Maybe.
func FromPair[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Get unwraps a Maybe into Go's comma-ok idiom. For a Nothing the zero value
// for T is returned, with ok=false.
func Get[T any](x Maybe[T]) (value T, ok bool) {
	switch m := x.Match(); m {
	case m.Just(&value):
		ok = true
	case m.Nothing():
	}
	return
}

// AndThen chains a Maybe into a function which itself may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value held by x, if any. Unlike method Maybe.Map it
// may change the value's type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern matching on the two variants of a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
