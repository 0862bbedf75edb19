// Package columns declares how each record field is labeled, filtered,
// sorted, formatted, and sized. Build is the single source of truth
// consumed by the table surface.
package columns

import (
	"github.com/manishawhade/staff-directory/internal/model"
	"github.com/manishawhade/staff-directory/internal/render"
)

// FilterKind selects the matching rule the surface applies to a column.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterText
	FilterNumber
	FilterDate
)

// Renderer tags the cell renderer variant for a column. The variant is
// resolved once here, so the surface never inspects value types at
// render time.
type Renderer int

const (
	RenderPlain Renderer = iota
	RenderBoolean
	RenderStringList
	RenderOptionalRef
	RenderCurrency
	RenderDate
	RenderRating
)

// Spec describes one displayable column. Specs are built once per
// session and never mutated afterwards.
type Spec struct {
	Field    string
	Header   string
	Filter   FilterKind
	Sortable bool

	// Format overrides the renderer variant's default text for simple
	// columns. It must accept any value without panicking.
	Format   func(any) string
	Renderer Renderer

	// Sizing hints. Width is a fixed pixel width; when zero, Flex
	// distributes the remaining space by weight, floored at MinWidth.
	Width    float32
	Flex     float32
	MinWidth float32

	// AutoHeight marks columns whose content may need a taller row.
	AutoHeight bool
}

// Build returns the column set for the staff directory. It is a pure
// function: every call yields structurally equal specs. Callers build
// once and keep the slice for the session.
func Build() []Spec {
	return []Spec{
		{
			Field:    model.FieldID,
			Header:   "ID",
			Filter:   FilterNumber,
			Sortable: true,
			Width:    80,
		},
		{
			Field:    model.FieldFirstName,
			Header:   "First Name",
			Filter:   FilterText,
			Sortable: true,
			Flex:     1,
			MinWidth: 100,
		},
		{
			Field:    model.FieldLastName,
			Header:   "Last Name",
			Filter:   FilterText,
			Sortable: true,
			Flex:     1,
			MinWidth: 100,
		},
		{
			Field:    model.FieldEmail,
			Header:   "Email",
			Filter:   FilterText,
			Sortable: true,
			Flex:     2,
			MinWidth: 180,
		},
		{
			Field:    model.FieldDepartment,
			Header:   "Department",
			Filter:   FilterText,
			Sortable: true,
			Flex:     1,
			MinWidth: 110,
		},
		{
			Field:    model.FieldPosition,
			Header:   "Position",
			Filter:   FilterText,
			Sortable: true,
			Flex:     1,
			MinWidth: 130,
		},
		{
			Field:    model.FieldLocation,
			Header:   "Location",
			Filter:   FilterText,
			Sortable: true,
			Flex:     1,
			MinWidth: 100,
		},
		{
			Field:    model.FieldSalary,
			Header:   "Salary",
			Filter:   FilterNumber,
			Sortable: true,
			Format:   render.Currency,
			Renderer: RenderCurrency,
			Width:    110,
		},
		{
			Field:    model.FieldHireDate,
			Header:   "Hire Date",
			Filter:   FilterDate,
			Sortable: true,
			Format:   render.HireDate,
			Renderer: RenderDate,
			Width:    120,
		},
		{
			Field:    model.FieldAge,
			Header:   "Age",
			Filter:   FilterNumber,
			Sortable: true,
			Width:    70,
		},
		{
			Field:    model.FieldPerformanceRating,
			Header:   "Rating",
			Filter:   FilterNumber,
			Sortable: true,
			Format:   render.Rating,
			Renderer: RenderRating,
			Width:    80,
		},
		{
			Field:    model.FieldProjectsCompleted,
			Header:   "Projects",
			Filter:   FilterNumber,
			Sortable: true,
			Width:    90,
		},
		{
			Field:    model.FieldIsActive,
			Header:   "Status",
			Sortable: true,
			Format:   render.Active,
			Renderer: RenderBoolean,
			Width:    90,
		},
		{
			Field:      model.FieldSkills,
			Header:     "Skills",
			Renderer:   RenderStringList,
			Flex:       2,
			MinWidth:   220,
			AutoHeight: true,
		},
		{
			Field:    model.FieldManager,
			Header:   "Manager",
			Filter:   FilterText,
			Sortable: true,
			Format:   render.Manager,
			Renderer: RenderOptionalRef,
			Flex:     1,
			MinWidth: 120,
		},
	}
}
