// Package table renders a staff snapshot as an interactive fyne table:
// sortable headers, a filter entry, and a paged body whose page size is
// configurable by the user or by the dynamic layout sizer.
package table

import (
	"fmt"
	"image/color"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/manishawhade/staff-directory/internal/columns"
	"github.com/manishawhade/staff-directory/internal/model"
)

const (
	headerRowHeight float32 = 34
	bodyRowHeight   float32 = 30
	tallRowHeight   float32 = 52
)

var royalBlue = color.NRGBA{R: 18, G: 57, B: 166, A: 255}
var royalBlueLight = color.NRGBA{R: 224, G: 233, B: 255, A: 255}

// Table is the presentation surface. It keeps the snapshot read-only
// and maintains a derived index view for the current sort and filter.
type Table struct {
	widget.BaseWidget

	specs   []columns.Spec
	records []model.Record

	view     []int
	sortCol  int
	sortAsc  bool
	query    string
	page     int
	pageSize int

	grid       *widget.Table
	filter     *widget.Entry
	prevBtn    *widget.Button
	nextBtn    *widget.Button
	pageLabel  *widget.Label
	sizeSelect *widget.Select
	status     *widget.Label

	// OnReady fires once, after the widget has mounted and measured
	// itself, so callers never read zero metrics. Assign before the
	// window is shown.
	OnReady func()

	readyOnce sync.Once
	mounted   bool
	height    float32
}

// New builds a table over an immutable snapshot. The specs are taken
// as-is and must not be mutated afterwards.
func New(specs []columns.Spec, records []model.Record) *Table {
	Initialize()
	t := &Table{
		specs:    specs,
		records:  records,
		sortCol:  -1,
		pageSize: defaultPageSize,
	}
	t.view = BuildView(records, specs, "")
	t.ExtendBaseWidget(t)
	return t
}

// RowHeight reports the current body row height. Before the widget has
// mounted it returns 0 and callers fall back to their fixed default.
func (t *Table) RowHeight() float32 {
	if !t.mounted {
		return 0
	}
	return bodyRowHeight
}

// ContainerHeight reports the widget's measured height, 0 before mount.
func (t *Table) ContainerHeight() float32 {
	return t.height
}

// SetPageSize applies a page size and jumps back to the first page.
// Values below 1 are clamped. Must run on the UI thread.
func (t *Table) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	if n == t.pageSize {
		return
	}
	t.pageSize = n
	t.page = 0

	if t.sizeSelect != nil {
		if opt := strconv.Itoa(n); containsOption(t.sizeSelect.Options, opt) {
			t.sizeSelect.SetSelected(opt)
		} else {
			t.sizeSelect.ClearSelected()
		}
	}
	t.refreshGrid()
}

// PageSize returns the page size currently in effect.
func (t *Table) PageSize() int { return t.pageSize }

// CreateRenderer implements fyne.Widget.
func (t *Table) CreateRenderer() fyne.WidgetRenderer {
	t.grid = widget.NewTable(
		func() (int, int) { return t.rowCount(), len(t.specs) },
		func() fyne.CanvasObject {
			bg := canvas.NewRectangle(color.Transparent)
			hdr := canvas.NewText("", color.White)
			lbl := widget.NewLabel("")
			lbl.Truncation = fyne.TextTruncateEllipsis
			return container.NewMax(
				bg,
				container.NewPadded(hdr),
				container.NewPadded(lbl),
			)
		},
		t.updateCell,
	)
	t.grid.OnSelected = func(id widget.TableCellID) {
		defer t.grid.UnselectAll()
		if id.Row == 0 {
			t.toggleSort(id.Col)
			return
		}
		t.showDetail(id)
	}

	t.filter = widget.NewEntry()
	t.filter.SetPlaceHolder("Filter employees...")
	t.filter.OnChanged = t.applyFilter

	t.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), t.previousPage)
	t.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), t.nextPage)
	t.pageLabel = widget.NewLabel("1/1")

	opts := make([]string, len(pageSizeOptions))
	for i, n := range pageSizeOptions {
		opts[i] = strconv.Itoa(n)
	}
	t.sizeSelect = widget.NewSelect(opts, func(sel string) {
		if n, err := strconv.Atoi(sel); err == nil {
			t.SetPageSize(n)
		}
	})
	t.sizeSelect.SetSelected(strconv.Itoa(t.pageSize))

	t.status = widget.NewLabel("")

	pagination := container.NewHBox(
		t.prevBtn,
		t.pageLabel,
		t.nextBtn,
		t.sizeSelect,
	)
	bottomBar := container.NewBorder(nil, nil, t.status, pagination)
	content := container.NewBorder(t.filter, bottomBar, nil, nil, t.grid)

	t.applyRowHeights()
	t.updatePagination()
	t.updateStatus()

	return &surfaceRenderer{
		WidgetRenderer: widget.NewSimpleRenderer(content),
		table:          t,
	}
}

// ApplyColumnWidths fits the columns to the available width using each
// spec's sizing hints. Called once after show and again on resize.
func (t *Table) ApplyColumnWidths(avail float32) {
	if t.grid == nil {
		return
	}
	if avail < 600 {
		avail = 600
	}
	for i, w := range ColumnWidths(t.specs, avail) {
		t.grid.SetColumnWidth(i, w)
	}
	t.grid.Refresh()
}

func (t *Table) rowCount() int {
	start, end := PageBounds(len(t.view), t.page, t.pageSize)
	return 1 + end - start
}

func (t *Table) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	box := obj.(*fyne.Container)
	bg := box.Objects[0].(*canvas.Rectangle)
	hdr := box.Objects[1].(*fyne.Container).Objects[0].(*canvas.Text)
	lbl := box.Objects[2].(*fyne.Container).Objects[0].(*widget.Label)

	spec := t.specs[id.Col]

	if id.Row == 0 {
		bg.FillColor = royalBlue
		bg.Show()

		lbl.Hide()
		hdr.Show()
		hdr.TextSize = theme.TextSize()
		hdr.TextStyle = fyne.TextStyle{Bold: true}
		hdr.Color = color.White
		hdr.Text = spec.Header
		if id.Col == t.sortCol {
			if t.sortAsc {
				hdr.Text += " ▲"
			} else {
				hdr.Text += " ▼"
			}
		}
		hdr.Refresh()
		return
	}

	start, end := PageBounds(len(t.view), t.page, t.pageSize)
	idx := start + id.Row - 1
	if idx >= end {
		hdr.Hide()
		lbl.Hide()
		bg.Hide()
		return
	}
	rec := t.records[t.view[idx]]

	hdr.Hide()
	lbl.Show()

	if id.Row%2 == 0 {
		bg.FillColor = royalBlueLight
		bg.Show()
	} else {
		bg.FillColor = color.Transparent
		bg.Hide()
	}

	cell := CellFor(spec, rec)
	if spec.Filter == columns.FilterNumber {
		lbl.Alignment = fyne.TextAlignTrailing
	} else {
		lbl.Alignment = fyne.TextAlignLeading
	}
	if spec.AutoHeight {
		lbl.Wrapping = fyne.TextWrapWord
		lbl.Truncation = fyne.TextTruncateOff
	} else {
		lbl.Wrapping = fyne.TextWrapOff
		lbl.Truncation = fyne.TextTruncateEllipsis
	}
	lbl.TextStyle = fyne.TextStyle{}
	lbl.SetText(cell.Text)
}

func (t *Table) toggleSort(col int) {
	if col < 0 || col >= len(t.specs) || !t.specs[col].Sortable {
		return
	}
	if t.sortCol == col {
		t.sortAsc = !t.sortAsc
	} else {
		t.sortCol = col
		t.sortAsc = true
	}
	SortView(t.view, t.records, t.specs[col], t.sortAsc)
	t.refreshGrid()
}

// showDetail surfaces the full value of a tapped cell in the status
// line. This is how truncated skill lists stay inspectable.
func (t *Table) showDetail(id widget.TableCellID) {
	start, end := PageBounds(len(t.view), t.page, t.pageSize)
	idx := start + id.Row - 1
	if idx >= end {
		return
	}
	spec := t.specs[id.Col]
	cell := CellFor(spec, t.records[t.view[idx]])

	text := cell.Text
	if cell.Detail != "" {
		text = cell.Detail
	}
	if t.status != nil {
		t.status.SetText(spec.Header + ": " + text)
	}
}

func (t *Table) applyFilter(query string) {
	t.query = query
	t.view = BuildView(t.records, t.specs, query)
	if t.sortCol >= 0 {
		SortView(t.view, t.records, t.specs[t.sortCol], t.sortAsc)
	}
	t.page = 0
	t.refreshGrid()
}

func (t *Table) previousPage() {
	if t.page == 0 {
		return
	}
	t.page--
	t.refreshGrid()
}

func (t *Table) nextPage() {
	if t.page >= TotalPages(len(t.view), t.pageSize)-1 {
		return
	}
	t.page++
	t.refreshGrid()
}

func (t *Table) refreshGrid() {
	if t.grid == nil {
		return
	}
	t.applyRowHeights()
	t.grid.Refresh()
	t.updatePagination()
	t.updateStatus()
}

func (t *Table) applyRowHeights() {
	if t.grid == nil {
		return
	}
	t.grid.SetRowHeight(0, headerRowHeight)
	start, _ := PageBounds(len(t.view), t.page, t.pageSize)
	for r := 1; r < t.rowCount(); r++ {
		rec := t.records[t.view[start+r-1]]
		t.grid.SetRowHeight(r, RowHeightFor(t.specs, rec))
	}
}

func (t *Table) updatePagination() {
	pages := TotalPages(len(t.view), t.pageSize)
	if t.pageLabel != nil {
		t.pageLabel.SetText(fmt.Sprintf("%d/%d", t.page+1, pages))
	}
	if t.prevBtn != nil {
		if t.page > 0 {
			t.prevBtn.Enable()
		} else {
			t.prevBtn.Disable()
		}
	}
	if t.nextBtn != nil {
		if t.page < pages-1 {
			t.nextBtn.Enable()
		} else {
			t.nextBtn.Disable()
		}
	}
}

func (t *Table) updateStatus() {
	if t.status == nil {
		return
	}
	if t.query != "" {
		t.status.SetText(fmt.Sprintf("%d of %d employees", len(t.view), len(t.records)))
		return
	}
	t.status.SetText(fmt.Sprintf("%d employees", len(t.records)))
}

func (t *Table) markReady(height float32) {
	t.height = height
	t.mounted = true
	t.readyOnce.Do(func() {
		if t.OnReady != nil {
			fyne.Do(t.OnReady)
		}
	})
}

// surfaceRenderer wraps the simple renderer to observe layout, which is
// the earliest point the widget knows its real height.
type surfaceRenderer struct {
	fyne.WidgetRenderer
	table *Table
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.WidgetRenderer.Layout(size)
	if size.Height > 0 {
		r.table.markReady(size.Height)
	}
}

func containsOption(opts []string, want string) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}
