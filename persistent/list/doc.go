/*
Package list implements a persistent singly linked list.

A list is a chain of immutable cons cells, terminated by the empty list. The
zero value List[T]{} is the empty list and ready to use. Prepending shares the
entire receiver as the tail of the new list, in O(1); operations that touch
cells further in — Append, Reverse, the positional operations — must recreate
every cell in front of the touched one, because cell links are permanently
fixed at construction. That is the accepted cost of safe sharing: no later
operation can ever retroactively change a list someone else captured.

Operations that may come up empty return a maybe.Maybe instead of raising.
Each positional operation also has a strict Must form which panics on an
out-of-range index.
*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'purely.list'.
func tracer() tracing.Trace {
	return tracing.Select("purely.list")
}
