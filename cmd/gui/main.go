package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/manishawhade/staff-directory/internal/columns"
	"github.com/manishawhade/staff-directory/internal/dataset"
	"github.com/manishawhade/staff-directory/internal/layout"
	"github.com/manishawhade/staff-directory/internal/model"
	stafftable "github.com/manishawhade/staff-directory/internal/table"
)

var royalBlue = color.NRGBA{R: 18, G: 57, B: 166, A: 255} // #1239A6 (deep royal)

type accentTheme struct{ fyne.Theme }

func (a accentTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNamePrimary:
		return royalBlue
	case theme.ColorNameFocus:
		return color.NRGBA{R: royalBlue.R, G: royalBlue.G, B: royalBlue.B, A: 200}
	case theme.ColorNameHover:
		return color.NRGBA{R: royalBlue.R, G: royalBlue.G, B: royalBlue.B, A: 30}
	}
	return a.Theme.Color(n, v)
}

// loadRecords picks the dataset source: an explicit SQLite database, an
// explicit JSON file, or the embedded seed. The snapshot is read once
// and never written back.
func loadRecords(dataPath, dbPath string) ([]model.Record, error) {
	switch {
	case dbPath != "":
		return dataset.LoadSQLite(dbPath)
	case dataPath != "":
		return dataset.LoadFile(dataPath)
	}
	return dataset.Seed()
}

func main() {
	dataPath := flag.String("data", "", "JSON staff dataset (defaults to the embedded seed)")
	dbPath := flag.String("db", "", "SQLite staff database")
	flag.Parse()

	records, err := loadRecords(*dataPath, *dbPath)
	if err != nil {
		log.Fatalf("load staff dataset: %v", err)
	}

	a := app.New()
	a.Settings().SetTheme(accentTheme{Theme: theme.LightTheme()})

	w := a.NewWindow("Staff Directory")
	w.Resize(fyne.NewSize(1280, 720))

	stafftable.Initialize()

	specs := columns.Build() // built once, kept for the session
	tbl := stafftable.New(specs, records)

	applyPageSize := func() {
		size := layout.PageSize(tbl.ContainerHeight(), tbl.RowHeight(), layout.HeaderHeight)
		tbl.SetPageSize(size)
	}

	// Runs only after the table has mounted and measured itself, so the
	// metrics below are never stale zeros.
	tbl.OnReady = func() {
		tbl.ApplyColumnWidths(w.Canvas().Size().Width - 48)
		applyPageSize()
	}

	w.SetContent(container.NewPadded(tbl))

	go func() { // tiny watcher to refit widths and page size on resize
		last := w.Canvas().Size()
		for {
			cur := w.Canvas().Size()
			if cur != last {
				last = cur
				fyne.Do(func() {
					tbl.ApplyColumnWidths(cur.Width - 48)
					applyPageSize()
				})
			}
			time.Sleep(120 * time.Millisecond)
		}
	}()

	w.ShowAndRun()
}
