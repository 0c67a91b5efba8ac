package stack_test

import (
	"testing"

	"github.com/rmullin7286/purely/maybe"
	"github.com/rmullin7286/purely/persistent/stack"
)

func TestStackEmpty(t *testing.T) {
	s := stack.Empty[int]()
	if !s.IsEmpty() || s.Len() != 0 {
		t.Error("expected Empty() to be an empty stack, isn't")
	}
	if s.Pop().IsJust() {
		t.Error("expected pop of empty stack to be Nothing, isn't")
	}
	if s.Peek().IsJust() {
		t.Error("expected peek into empty stack to be Nothing, isn't")
	}
}

func TestStackLIFO(t *testing.T) {
	s := stack.Empty[int]().Push(1).Push(2).Push(3)
	var got []int
	for !s.IsEmpty() {
		p := s.MustPop()
		got = append(got, p.First)
		s = p.Second
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Errorf("expected pop order 3, 2, 1, is %v", got)
	}
}

func TestStackPeek(t *testing.T) {
	s := stack.Of(1, 2, 3)
	if v, _ := maybe.Get(s.Peek()); v != 3 {
		t.Errorf("expected the last pushed value on top, is %d", v)
	}
	if s.Len() != 3 {
		t.Errorf("expected peek to leave the stack intact, length is %d", s.Len())
	}
}

func TestStackPersistence(t *testing.T) {
	s := stack.Of(1, 2)
	s2 := s.Push(3)
	if s.Len() != 2 {
		t.Errorf("expected the original stack to stay untouched by push, length is %d", s.Len())
	}
	if !s2.MustPop().Second.Equal(s) {
		t.Error("expected pop to undo push, doesn't")
	}
}

func TestStackMustPopPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustPop on empty stack to panic, didn't")
		}
	}()
	stack.Empty[int]().MustPop()
}

func TestStackString(t *testing.T) {
	if s := stack.Of(1, 2, 3).String(); s != "[3, 2, 1]" {
		t.Errorf("expected stack to print top-first as [3, 2, 1], is %q", s)
	}
}
