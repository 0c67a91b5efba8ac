package view_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/rmullin7286/purely/persistent/list"
	"github.com/rmullin7286/purely/view"
)

// Removing an absent element reports no change; removing a present one
// reports a change. The signal comes from comparing sizes before and after.
func TestListViewEffectDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "purely.view")
	defer teardown()
	//
	v := view.WrapList(list.Of(1, 2, 3))
	require.False(t, v.Remove(4), "removing an absent element must report no change")
	require.Equal(t, []int{1, 2, 3}, v.Slice())
	require.True(t, v.Remove(2), "removing a present element must report a change")
	require.Equal(t, []int{1, 3}, v.Slice())
}

func TestListViewDoesNotTouchWrappedValue(t *testing.T) {
	l := list.Of(1, 2, 3)
	v := view.WrapList(l)
	v.Add(4)
	v.RemoveAt(0)
	require.Equal(t, []int{1, 2, 3}, l.Slice(), "the wrapped persistent value must stay untouched")
	require.Equal(t, []int{2, 3, 4}, v.Value().Slice())
}

func TestListViewSequenced(t *testing.T) {
	v := view.WrapList(list.Of(2))
	v.AddFirst(1)
	v.AddLast(3)
	require.Equal(t, []int{1, 2, 3}, v.Slice())
	require.Equal(t, 1, v.First())
	require.Equal(t, 3, v.Last())
	require.Equal(t, 1, v.RemoveFirst())
	require.Equal(t, 3, v.RemoveLast())
	require.Equal(t, []int{2}, v.Slice())
}

func TestListViewPositional(t *testing.T) {
	v := view.WrapList(list.Of(1, 2, 3))
	require.Equal(t, 2, v.Get(1))

	old := v.Set(1, 42)
	require.Equal(t, 2, old, "set must return the replaced element")
	require.Equal(t, []int{1, 42, 3}, v.Slice())

	v.Insert(0, 0)
	require.Equal(t, []int{0, 1, 42, 3}, v.Slice())

	require.Equal(t, 42, v.RemoveAt(2))
	require.Equal(t, []int{0, 1, 3}, v.Slice())

	require.Equal(t, 2, v.IndexOf(3))
	require.Equal(t, -1, v.IndexOf(99), "index of an absent element is -1")
	require.Equal(t, -1, v.LastIndexOf(99))
}

// The view layer is the translation boundary from absent results to panics.
func TestListViewPanicsOutOfRange(t *testing.T) {
	v := view.WrapList(list.Of(1, 2, 3))
	require.Panics(t, func() { v.Get(3) })
	require.Panics(t, func() { v.Get(-1) })
	require.Panics(t, func() { v.Set(3, 0) })
	require.Panics(t, func() { v.RemoveAt(3) })
	require.Panics(t, func() { v.Insert(5, 0) })
	require.Panics(t, func() { v.SubList(1, 9) })

	empty := view.WrapList(list.Empty[int]())
	require.Panics(t, func() { empty.First() })
	require.Panics(t, func() { empty.Last() })
	require.Panics(t, func() { empty.RemoveFirst() })
	require.Panics(t, func() { empty.RemoveLast() })
}

// A sub-list is itself an adapter with its own reference cell, not a
// snapshot slice.
func TestListViewSubListIsAdapter(t *testing.T) {
	v := view.WrapList(list.Of(1, 2, 3, 4))
	sub := v.SubList(1, 3)
	require.Equal(t, []int{2, 3}, sub.Slice())

	require.True(t, sub.Add(9))
	require.Equal(t, []int{2, 3, 9}, sub.Slice())
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice(), "mutating the sub-view must not affect the parent")
}

func TestListViewBulk(t *testing.T) {
	v := view.WrapList(list.Of(1, 2, 3))
	require.True(t, v.AddAll(4, 5))
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.Slice())
	require.True(t, v.RemoveAll(2, 4))
	require.Equal(t, []int{1, 3, 5}, v.Slice())
	require.False(t, v.RemoveAll(99), "removing absent elements must report no change")
	require.True(t, v.RetainAll(3, 5))
	require.Equal(t, []int{3, 5}, v.Slice())
	v.Clear()
	require.True(t, v.IsEmpty())
	require.False(t, v.Contains(3))
}

func TestListViewIterator(t *testing.T) {
	v := view.WrapList(list.Of(1, 2, 3))
	it := v.ListIterator()
	var got []int
	for it.HasNext() {
		x, _ := it.Next()
		got = append(got, x)
	}
	require.Equal(t, []int{1, 2, 3}, got)

	v.Add(4)
	require.False(t, it.HasNext(), "an iterator walks the value it was created over")
}
