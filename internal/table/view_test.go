package table_test

import (
	"testing"

	"github.com/manishawhade/staff-directory/internal/columns"
	"github.com/manishawhade/staff-directory/internal/model"
	"github.com/manishawhade/staff-directory/internal/render"
	"github.com/manishawhade/staff-directory/internal/table"
)

func testRecords() []model.Record {
	manager := "Robert Fields"
	return []model.Record{
		{ID: 1, FirstName: "Priya", LastName: "Raman", Department: "Engineering",
			Salary: 95000, HireDate: "2020-01-20", Age: 29, IsActive: true,
			Skills: []string{"TypeScript", "React"}},
		{ID: 2, FirstName: "Lena", LastName: "Vogel", Department: "Sales",
			Salary: 87000, HireDate: "2019-11-04", Age: 31, IsActive: true,
			Skills: []string{"Negotiation"}, Manager: &manager},
		{ID: 3, FirstName: "Robert", LastName: "Fields", Department: "Sales",
			Salary: 139000, HireDate: "2015-06-22", Age: 47, IsActive: false,
			Skills: []string{}},
	}
}

func TestBuildViewWithoutQueryKeepsEverything(t *testing.T) {
	records := testRecords()
	view := table.BuildView(records, columns.Build(), "")
	if len(view) != len(records) {
		t.Fatalf("got %d indices, want %d", len(view), len(records))
	}
	for i, idx := range view {
		if idx != i {
			t.Fatalf("view[%d] = %d, want snapshot order", i, idx)
		}
	}
}

func TestBuildViewTextFilter(t *testing.T) {
	records := testRecords()
	view := table.BuildView(records, columns.Build(), "Sales")
	if len(view) != 2 {
		t.Fatalf("got %d matches for %q, want 2", len(view), "Sales")
	}
	for _, idx := range view {
		if records[idx].Department != "Sales" {
			t.Fatalf("record %d matched but is in %q", records[idx].ID, records[idx].Department)
		}
	}
}

func TestBuildViewNumberPrefix(t *testing.T) {
	records := testRecords()
	view := table.BuildView(records, columns.Build(), "95")
	if len(view) != 1 || records[view[0]].Salary != 95000 {
		t.Fatalf("number filter %q matched %v, want the 95000 salary only", "95", view)
	}
}

func TestBuildViewNoMatch(t *testing.T) {
	view := table.BuildView(testRecords(), columns.Build(), "zzzz")
	if len(view) != 0 {
		t.Fatalf("got %d matches, want none", len(view))
	}
}

func TestSortViewLeavesSnapshotAlone(t *testing.T) {
	records := testRecords()
	view := table.BuildView(records, columns.Build(), "")

	salarySpec := columns.Spec{Field: model.FieldSalary, Sortable: true}
	table.SortView(view, records, salarySpec, true)

	wantOrder := []int64{2, 1, 3} // 87000, 95000, 139000
	for i, idx := range view {
		if records[idx].ID != wantOrder[i] {
			t.Fatalf("ascending position %d holds record %d, want %d", i, records[idx].ID, wantOrder[i])
		}
	}
	// snapshot order untouched
	for i, r := range records {
		if r.ID != int64(i+1) {
			t.Fatalf("snapshot was reordered: position %d holds record %d", i, r.ID)
		}
	}

	table.SortView(view, records, salarySpec, false)
	if records[view[0]].Salary != 139000 {
		t.Fatalf("descending sort starts with salary %v, want 139000", records[view[0]].Salary)
	}
}

func TestSortViewNilManagerLast(t *testing.T) {
	records := testRecords()
	view := table.BuildView(records, columns.Build(), "")

	table.SortView(view, records, columns.Spec{Field: model.FieldManager}, true)
	last := records[view[len(view)-1]]
	if last.Manager != nil {
		t.Fatalf("record %d with manager sorted last; absent managers should sort last", last.ID)
	}
}

func TestTotalPages(t *testing.T) {
	if got := table.TotalPages(20, 7); got != 3 {
		t.Fatalf("TotalPages(20, 7) = %d, want 3", got)
	}
	if got := table.TotalPages(0, 10); got != 1 {
		t.Fatalf("TotalPages(0, 10) = %d, want 1", got)
	}
	if got := table.TotalPages(10, 0); got != 1 {
		t.Fatalf("TotalPages(10, 0) = %d, want 1", got)
	}
}

func TestPageBounds(t *testing.T) {
	if s, e := table.PageBounds(25, 0, 10); s != 0 || e != 10 {
		t.Fatalf("PageBounds(25, 0, 10) = %d, %d", s, e)
	}
	if s, e := table.PageBounds(25, 2, 10); s != 20 || e != 25 {
		t.Fatalf("PageBounds(25, 2, 10) = %d, %d", s, e)
	}
	// a page past the end clamps to the last page
	if s, e := table.PageBounds(25, 99, 10); s != 20 || e != 25 {
		t.Fatalf("PageBounds(25, 99, 10) = %d, %d", s, e)
	}
	if s, e := table.PageBounds(0, 0, 10); s != 0 || e != 0 {
		t.Fatalf("PageBounds(0, 0, 10) = %d, %d", s, e)
	}
}

func TestColumnWidths(t *testing.T) {
	specs := []columns.Spec{
		{Width: 100},
		{Flex: 1},
		{Flex: 1, MinWidth: 300},
	}
	widths := table.ColumnWidths(specs, 500)
	if widths[0] != 100 {
		t.Fatalf("fixed width = %v, want 100", widths[0])
	}
	if widths[1] != 200 {
		t.Fatalf("flex width = %v, want 200", widths[1])
	}
	if widths[2] != 300 {
		t.Fatalf("min width not enforced: %v", widths[2])
	}
}

func TestCellForDispatch(t *testing.T) {
	rec := testRecords()[2] // inactive, empty skills, no manager

	skills := columns.Spec{Field: model.FieldSkills, Renderer: columns.RenderStringList}
	if cell := table.CellFor(skills, rec); cell.Text != render.NoSkills {
		t.Fatalf("skills cell = %q, want placeholder", cell.Text)
	}

	active := columns.Spec{Field: model.FieldIsActive, Renderer: columns.RenderBoolean, Format: render.Active}
	if cell := table.CellFor(active, rec); cell.Text != "Inactive" {
		t.Fatalf("status cell = %q, want Inactive", cell.Text)
	}

	manager := columns.Spec{Field: model.FieldManager, Renderer: columns.RenderOptionalRef, Format: render.Manager}
	if cell := table.CellFor(manager, rec); cell.Text != render.NoManager {
		t.Fatalf("manager cell = %q, want None", cell.Text)
	}

	plain := columns.Spec{Field: model.FieldFirstName}
	if cell := table.CellFor(plain, rec); cell.Text != "Robert" {
		t.Fatalf("plain cell = %q, want Robert", cell.Text)
	}
}

func TestRowHeightForAutoHeightColumns(t *testing.T) {
	specs := []columns.Spec{
		{Field: model.FieldFirstName},
		{Field: model.FieldSkills, Renderer: columns.RenderStringList, AutoHeight: true},
	}

	long := model.Record{Skills: []string{
		"Python Programming", "Data Engineering", "Leadership",
	}}
	short := model.Record{Skills: []string{"Go"}}

	tall := table.RowHeightFor(specs, long)
	base := table.RowHeightFor(specs, short)
	if tall <= base {
		t.Fatalf("long skill list row height %v not taller than base %v", tall, base)
	}

	// without an auto-height column the long record stays at the base height
	fixedOnly := []columns.Spec{{Field: model.FieldFirstName}}
	if got := table.RowHeightFor(fixedOnly, long); got != base {
		t.Fatalf("row height %v for fixed-only specs, want base %v", got, base)
	}
}
