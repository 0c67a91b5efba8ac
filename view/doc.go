/*
Package view bridges the persistent collections into APIs that expect in-place
mutation.

A view holds one reference cell containing the current persistent value. Every
read delegates to that value; every mutating call computes a new persistent
value and swaps it into the cell wholesale. Nothing is copied up front, and
the persistent value inside may keep being shared with other holders — that is
safe, it is immutable.

Views provide no internal synchronization. Concurrent mutating calls on the
same view race on the cell: last writer wins, intermediate updates can be
lost. Callers that share a view between goroutines must serialize access
themselves. This is a documented limitation of the adapter, not of the
persistent values, which remain safe to share freely.

The view layer is the single place where an absent result from the persistent
core is translated into a panic, mirroring collection protocols that throw on
out-of-range access.
*/
package view

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'purely.view'.
func tracer() tracing.Trace {
	return tracing.Select("purely.view")
}
