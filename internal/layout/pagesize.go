// Package layout computes how many table rows fit the visible container.
package layout

// Fallback metrics for the page-size computation. The container height
// is unmeasurable before the canvas has laid out, and the row height is
// unknown until the table widget has mounted; both cases fall back to
// fixed defaults rather than producing a zero or negative page size.
const (
	DefaultContainerHeight float32 = 400
	DefaultRowHeight       float32 = 30
	HeaderHeight           float32 = 50
)

// PageSize returns how many rows of rowPx height fit below a header of
// headerPx inside a container of containerPx. The result is never less
// than one: a container smaller than a single row still shows one row
// and lets the surface scroll the overflow.
func PageSize(containerPx, rowPx, headerPx float32) int {
	if containerPx <= 0 {
		containerPx = DefaultContainerHeight
	}
	if rowPx <= 0 {
		rowPx = DefaultRowHeight
	}

	available := containerPx - headerPx
	if available < rowPx {
		return 1
	}
	return int(available / rowPx)
}
