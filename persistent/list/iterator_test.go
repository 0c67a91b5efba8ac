package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmullin7286/purely/maybe"
	"github.com/rmullin7286/purely/persistent/list"
)

func TestIteratorWalksHeadToTail(t *testing.T) {
	l := list.Of(1, 2, 3)
	var got []int
	for it := l.Iter(); it.HasNext(); {
		v, _ := it.Next()
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestIteratorExhaustion(t *testing.T) {
	it := list.Of(1).Iter()
	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.False(t, ok, "an exhausted iterator must keep reporting !ok")
	require.False(t, it.HasNext())
}

// Iterators are not restartable mid-stream, but a fresh one always starts
// from the head of the original list value.
func TestIteratorFreshStart(t *testing.T) {
	l := list.Of(1, 2, 3)
	it := l.Iter()
	it.Next()
	it.Next()
	v, _ := l.Iter().Next()
	require.Equal(t, 1, v)
}

func TestListIteratorPingPong(t *testing.T) {
	it := list.Of(1, 2, 3).ListIterator()
	require.False(t, it.HasPrevious())
	require.Equal(t, 0, it.NextIndex())

	v, _ := it.Next()
	require.Equal(t, 1, v)
	v, _ = it.Next()
	require.Equal(t, 2, v)
	require.Equal(t, 2, it.NextIndex())
	require.Equal(t, 1, it.PreviousIndex())

	v, _ = it.Previous()
	require.Equal(t, 2, v, "previous must return the element next just returned")
	v, _ = it.Next()
	require.Equal(t, 2, v, "next after previous must return the same element again")

	v, _ = it.Next()
	require.Equal(t, 3, v)
	require.False(t, it.HasNext())
	require.True(t, it.HasPrevious())
}

func TestListIteratorAt(t *testing.T) {
	l := list.Of(1, 2, 3)

	it, ok := maybe.Get(l.ListIteratorAt(2))
	require.True(t, ok)
	v, _ := it.Next()
	require.Equal(t, 3, v)

	it, ok = maybe.Get(l.ListIteratorAt(3)) // at the end: valid
	require.True(t, ok)
	require.False(t, it.HasNext())
	require.True(t, it.HasPrevious())

	require.False(t, l.ListIteratorAt(4).IsJust())
	require.False(t, l.ListIteratorAt(-1).IsJust())
}

func TestListIteratorEmptyList(t *testing.T) {
	it := list.Empty[int]().ListIterator()
	require.False(t, it.HasNext())
	require.False(t, it.HasPrevious())
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.Previous()
	require.False(t, ok)
}
