package table

import (
	"sort"
	"strconv"
	"strings"

	"github.com/manishawhade/staff-directory/internal/columns"
	"github.com/manishawhade/staff-directory/internal/model"
	"github.com/manishawhade/staff-directory/internal/render"
)

// CellFor resolves the rendered cell for one column of one record. The
// renderer variant was fixed when the specs were built, so no value
// type inspection happens here beyond the formatters' own defenses.
func CellFor(spec columns.Spec, rec model.Record) render.Cell {
	v := model.FieldValue(rec, spec.Field)
	if spec.Renderer == columns.RenderStringList {
		return render.Skills(v)
	}
	if spec.Format != nil {
		return render.Cell{Text: spec.Format(v)}
	}
	return render.Cell{Text: render.Plain(v)}
}

// matchesFilter reports whether one column of a record matches the
// query under the column's filter kind. The query must already be
// trimmed and lowercased.
func matchesFilter(spec columns.Spec, rec model.Record, query string) bool {
	if spec.Filter == columns.FilterNone || query == "" {
		return false
	}
	v := model.FieldValue(rec, spec.Field)

	switch spec.Filter {
	case columns.FilterText:
		return strings.Contains(strings.ToLower(CellFor(spec, rec).Text), query)
	case columns.FilterDate:
		if strings.Contains(strings.ToLower(render.Plain(v)), query) {
			return true
		}
		return strings.Contains(strings.ToLower(CellFor(spec, rec).Text), query)
	case columns.FilterNumber:
		if _, err := strconv.ParseFloat(query, 64); err != nil {
			return false
		}
		return strings.HasPrefix(render.Plain(v), query)
	}
	return false
}

// BuildView returns the indices of records matching the query, in
// snapshot order. An empty query keeps every record. A record matches
// when any filterable column matches.
func BuildView(records []model.Record, specs []columns.Spec, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	view := make([]int, 0, len(records))
	for i, rec := range records {
		if query == "" {
			view = append(view, i)
			continue
		}
		for _, spec := range specs {
			if matchesFilter(spec, rec, query) {
				view = append(view, i)
				break
			}
		}
	}
	return view
}

// SortView orders the view by one column. The snapshot itself is never
// reordered; only the index slice moves.
func SortView(view []int, records []model.Record, spec columns.Spec, asc bool) {
	sort.SliceStable(view, func(i, j int) bool {
		a := model.FieldValue(records[view[i]], spec.Field)
		b := model.FieldValue(records[view[j]], spec.Field)
		c := compareValues(a, b)
		if asc {
			return c < 0
		}
		return c > 0
	})
}

// compareValues orders two raw field values. Nil (absent) sorts after
// everything else so records without a manager end up last.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		default:
			return -1
		}
	}

	switch av := a.(type) {
	case int64:
		if bv, ok := b.(int64); ok {
			return compareOrdered(av, bv)
		}
	case int:
		if bv, ok := b.(int); ok {
			return compareOrdered(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return compareOrdered(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case bv:
				return -1
			default:
				return 1
			}
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
		}
	case []string:
		if bv, ok := b.([]string); ok {
			if len(av) != len(bv) {
				return compareOrdered(len(av), len(bv))
			}
			return strings.Compare(strings.Join(av, ","), strings.Join(bv, ","))
		}
	}
	return strings.Compare(render.Plain(a), render.Plain(b))
}

func compareOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// TotalPages returns the page count for a view, at least 1.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PageBounds clamps the window of the view covered by a page.
func PageBounds(total, page, pageSize int) (start, end int) {
	if pageSize < 1 || total == 0 {
		return 0, 0
	}
	start = page * pageSize
	if start >= total {
		start = (TotalPages(total, pageSize) - 1) * pageSize
	}
	if start < 0 {
		start = 0
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// ColumnWidths distributes the available width across the specs: fixed
// widths are taken as-is, the remainder is split by flex weight and
// floored at each column's minimum.
func ColumnWidths(specs []columns.Spec, avail float32) []float32 {
	widths := make([]float32, len(specs))
	var fixed, flexTotal float32
	for _, s := range specs {
		if s.Width > 0 {
			fixed += s.Width
		} else {
			flexTotal += s.Flex
		}
	}

	rem := avail - fixed
	if rem < 0 {
		rem = 0
	}
	for i, s := range specs {
		if s.Width > 0 {
			widths[i] = s.Width
			continue
		}
		w := float32(0)
		if flexTotal > 0 {
			w = rem * s.Flex / flexTotal
		}
		if w < s.MinWidth {
			w = s.MinWidth
		}
		widths[i] = w
	}
	return widths
}

// autoHeightChars is how much rendered text a single body row holds
// comfortably; beyond it, an auto-height column gets a taller row.
const autoHeightChars = 40

// RowHeightFor returns the body row height for one record: the base
// height, or the taller one when an auto-height column carries more
// text than a single line fits.
func RowHeightFor(specs []columns.Spec, rec model.Record) float32 {
	for _, spec := range specs {
		if spec.AutoHeight && len(CellFor(spec, rec).Text) > autoHeightChars {
			return tallRowHeight
		}
	}
	return bodyRowHeight
}
