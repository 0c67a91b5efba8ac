/*
Package result provides a Result[T]: the outcome of a computation that either
succeeded with a value of type T (Ok) or failed with an error (Err).

Like maybe.Maybe, a Result is unwrapped by pattern matching:

	var v int
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		// v holds the value
	case m.Err(&e):
		// e holds the error
	}
*/
package result

import "github.com/rmullin7286/purely/maybe"

// Result holds either a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err must be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// FromMaybe converts an optional value into a Result, substituting err for
// the Nothing case.
func FromMaybe[T any](x maybe.Maybe[T], err error) Result[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Ok(v)
	case m.Nothing():
	}
	return Err[T](err)
}

// ToMaybe drops the error information from a Result.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	var v T
	switch m := r.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	}
	return maybe.Nothing[T]()
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// Map applies f to the value of a successful Result; an Err passes through
// unchanged.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&e):
	}
	return Err[S](e)
}

// AndThen chains a Result into a function which itself may fail.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&e):
	}
	return Err[S](e)
}

// MapError applies f to the error of a failed Result; an Ok passes through
// unchanged.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	var e error
	switch m := r.Match(); m {
	case m.Err(&e):
		return Err[T](f(e))
	}
	return r
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern matching on the two variants of a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
