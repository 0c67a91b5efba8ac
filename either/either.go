/*
Package either provides a two-case sum type: an Either[L, R] holds exactly one
value, either of type L (Left) or of type R (Right).

By convention the Left case carries the error or less expected outcome and the
Right case the successful one, but nothing in this package enforces that
reading. Pattern matching follows the same idiom as maybe and result:

	var l string
	var r int
	switch m := e.Match(); m {
	case m.Left(&l):
		// e held an L
	case m.Right(&r):
		// e held an R
	}
*/
package either

import (
	"github.com/rmullin7286/purely/result"
)

// Either holds either a value of type L or a value of type R.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	IsRight() bool
}

type either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left constructs an Either holding a left value.
func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l, isLeft: true}
}

// Right constructs an Either holding a right value.
func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

func (e either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e either[L, R]) IsRight() bool {
	return !e.isLeft
}

// Swap exchanges the two cases.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Right[R, L](l)
	case m.Right(&r):
	}
	return Left[R, L](r)
}

// MapLeft applies f to a left value; a Right passes through unchanged.
func MapLeft[L, R, L2 any](f func(L) L2, e Either[L, R]) Either[L2, R] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Left[L2, R](f(l))
	case m.Right(&r):
	}
	return Right[L2, R](r)
}

// MapRight applies f to a right value; a Left passes through unchanged.
func MapRight[L, R, R2 any](f func(R) R2, e Either[L, R]) Either[L, R2] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Left[L, R2](l)
	case m.Right(&r):
	}
	return Right[L, R2](f(r))
}

// Fold collapses an Either into a single value by applying the function for
// whichever case is present.
func Fold[L, R, T any](lf func(L) T, rf func(R) T, e Either[L, R]) T {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return lf(l)
	case m.Right(&r):
	}
	return rf(r)
}

// ToResult converts an Either with an error on the left into a Result.
func ToResult[T any](e Either[error, T]) result.Result[T] {
	var err error
	var v T
	switch m := e.Match(); m {
	case m.Left(&err):
		return result.Err[T](err)
	case m.Right(&v):
	}
	return result.Ok(v)
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern matching on the two variants of an Either.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if em.e.isLeft {
		*l = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if !em.e.isLeft {
		*r = em.e.right
		return em
	}
	return nil
}
