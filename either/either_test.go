package either_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/rmullin7286/purely/either"
)

func TestEitherSimple(t *testing.T) {
	x := Left[int, string](7)
	y := Right[int, string]("seven")

	var n int
	var s string
	switch m := x.Match(); m {
	case m.Left(&n):
		t.Logf("Left(%d)", n)
	case m.Right(&s):
		t.Error("expected Left(7) to match the left case, didn't")
	}
	if n != 7 {
		t.Errorf("expected n to be 7, is %#v", n)
	}

	switch m := y.Match(); m {
	case m.Left(&n):
		t.Error("expected Right(seven) to match the right case, didn't")
	case m.Right(&s):
		t.Logf("Right(%q)", s)
	}
	if s != "seven" {
		t.Errorf("expected s to be seven, is %#v", s)
	}

	if !x.IsLeft() || x.IsRight() {
		t.Error("expected Left(7) to report IsLeft, doesn't")
	}
	if !y.IsRight() || y.IsLeft() {
		t.Error("expected Right(seven) to report IsRight, doesn't")
	}
}

func TestEitherSwap(t *testing.T) {
	x := Swap(Left[int, string](7))
	if !x.IsRight() {
		t.Error("expected swapped Left to be Right, isn't")
	}
	var n int
	switch m := x.Match(); m {
	case m.Left(new(string)):
	case m.Right(&n):
	}
	if n != 7 {
		t.Errorf("expected swapped value to be 7, is %d", n)
	}
}

func TestEitherMap(t *testing.T) {
	x := MapRight(strconv.Itoa, Right[error, int](7))
	var s string
	switch m := x.Match(); m {
	case m.Left(new(error)):
		t.Error("expected MapRight over Right to stay Right, didn't")
	case m.Right(&s):
	}
	if s != "7" {
		t.Errorf("expected mapped right value to be \"7\", is %q", s)
	}

	y := MapLeft(func(n int) int { return n * 2 }, Right[int, string]("seven"))
	if !y.IsRight() {
		t.Error("expected MapLeft over Right to stay Right, didn't")
	}
}

func TestEitherFold(t *testing.T) {
	length := func(s string) int { return len(s) }
	double := func(n int) int { return n * 2 }

	if v := Fold(length, double, Left[string, int]("seven")); v != 5 {
		t.Errorf("expected fold of Left(seven) to be 5, is %d", v)
	}
	if v := Fold(length, double, Right[string, int](7)); v != 14 {
		t.Errorf("expected fold of Right(7) to be 14, is %d", v)
	}
}

func TestEitherToResult(t *testing.T) {
	boom := errors.New("boom")
	if ToResult(Left[error, int](boom)).IsOk() {
		t.Error("expected ToResult(Left err) to be Err, isn't")
	}
	r := ToResult(Right[error, int](7))
	if v := r.WithDefault(-1); v != 7 {
		t.Errorf("expected ToResult(Right 7) to hold 7, is %d", v)
	}
}
