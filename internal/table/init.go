package table

import "sync"

// Selectable page sizes offered by the pagination bar. The dynamically
// computed size is applied through SetPageSize and may fall outside
// this set.
var pageSizeOptions []int

const defaultPageSize = 20

var initOnce sync.Once

// Initialize performs the one-time process-wide table setup. The
// composition root calls it explicitly before building the first
// table; New also calls it as a safety net. Repeat calls are no-ops.
func Initialize() {
	initOnce.Do(func() {
		pageSizeOptions = []int{10, 20, 50, 100}
	})
}
