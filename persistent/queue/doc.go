/*
Package queue implements a persistent FIFO queue on top of two persistent
lists, front and back. Enqueue prepends to back in O(1); Dequeue reads from
front, rebuilding front as reverse(back) only when front has run empty. Every
element crosses that boundary at most once in its lifetime in the queue, so
any sequence of N operations does O(N) total work — amortized O(1) per
operation.
*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'purely.queue'.
func tracer() tracing.Trace {
	return tracing.Select("purely.queue")
}
