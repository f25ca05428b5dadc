package sortable

import (
	"github.com/amp-labs/amp-bounds/compare"
)

// Sortable is the capability required of values whose bounds can be computed:
// equality plus a strict total order.
type Sortable[T any] interface {
	compare.Comparable[T]
	compare.Lesser[T]
}
