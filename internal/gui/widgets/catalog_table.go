package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Row is one rendered table line: the item name followed by its price in
// each of the five denominations, already formatted for display.
type Row struct {
	Name  string
	Cells [5]string
}

var headerTitles = [6]string{"Item Name", "pp", "gp", "ep", "sp", "cp"}

// CatalogTable renders the filtered catalog in a scrollable table with
// tappable column headers for sorting.
type CatalogTable struct {
	container *fyne.Container
	table     *widget.Table

	rows []Row

	sortColumn int
	sortDesc   bool
	sortActive bool

	headerTappedHandler func(column int)
}

func NewCatalogTable() *CatalogTable {
	ct := &CatalogTable{}
	ct.setupTable()
	return ct
}

func (ct *CatalogTable) setupTable() {
	ct.table = widget.NewTable(
		func() (int, int) {
			return len(ct.rows), len(headerTitles)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row >= len(ct.rows) {
				label.SetText("")
				return
			}
			row := ct.rows[id.Row]
			if id.Col == 0 {
				label.Alignment = fyne.TextAlignLeading
				label.SetText(row.Name)
				return
			}
			label.Alignment = fyne.TextAlignTrailing
			label.SetText(row.Cells[id.Col-1])
		},
	)

	ct.table.ShowHeaderRow = true
	ct.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("", nil)
	}
	ct.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		button := obj.(*widget.Button)
		button.SetText(ct.headerTitle(id.Col))
		col := id.Col
		button.OnTapped = func() {
			ct.onHeaderTapped(col)
		}
	}

	ct.table.SetColumnWidth(0, 420)
	for col := 1; col < len(headerTitles); col++ {
		ct.table.SetColumnWidth(col, 100)
	}

	ct.container = container.NewStack(ct.table)
}

func (ct *CatalogTable) headerTitle(col int) string {
	title := headerTitles[col]
	if !ct.sortActive || col != ct.sortColumn {
		return title
	}
	if ct.sortDesc {
		return title + " v"
	}
	return title + " ^"
}

func (ct *CatalogTable) GetContainer() *fyne.Container {
	return ct.container
}

// SetRows replaces the table contents.
func (ct *CatalogTable) SetRows(rows []Row) {
	ct.rows = rows
	ct.table.Refresh()
}

func (ct *CatalogTable) RowCount() int {
	return len(ct.rows)
}

// SetSortIndicator marks the column the rows are currently ordered by.
func (ct *CatalogTable) SetSortIndicator(column int, descending, active bool) {
	ct.sortColumn = column
	ct.sortDesc = descending
	ct.sortActive = active
	ct.table.Refresh()
}

func (ct *CatalogTable) SetHeaderTappedHandler(handler func(column int)) {
	ct.headerTappedHandler = handler
}

func (ct *CatalogTable) onHeaderTapped(column int) {
	if ct.headerTappedHandler != nil {
		ct.headerTappedHandler(column)
	}
}
