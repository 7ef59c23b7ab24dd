package gui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goldenanvil/compendium/internal/catalog"
	"github.com/goldenanvil/compendium/internal/gui/widgets"
	"github.com/goldenanvil/compendium/internal/logger"
	"github.com/goldenanvil/compendium/internal/storage"
)

// AllFiles is the dropdown entry that merges every catalog file.
const AllFiles = "All files"

// Controller coordinates the view with the store and the catalog
// load/query cycle. All state lives here: the file index, the current
// selection, and the loaded catalog. The catalog slice is replaced
// wholesale on every reload and never mutated, so each keystroke just
// re-runs the pure query over the current value.
type Controller struct {
	view   *View
	store  *storage.Store
	logger logger.Logger

	fileIndex map[string]string // display name -> absolute path
	selection string

	items []catalog.Item
	skips []catalog.LoadError

	sortColumn     catalog.SortColumn
	sortDescending bool
	sortActive     bool
}

func NewController(store *storage.Store, log logger.Logger) *Controller {
	return &Controller{
		store:     store,
		logger:    log,
		fileIndex: make(map[string]string),
		selection: AllFiles,
	}
}

func (c *Controller) SetView(view *View) {
	c.view = view
}

// Initialize scans the data folder and shows the merged catalog.
func (c *Controller) Initialize() {
	c.refreshFileList(AllFiles)
	c.loadSelection()
	c.ApplyFilters()
}

// refreshFileList rescans the data folder and rebuilds the dropdown.
func (c *Controller) refreshFileList(selectDisplay string) {
	paths, err := c.store.ListCatalogFiles()
	if err != nil {
		c.handleError("Folder scan error", err)
		return
	}

	c.fileIndex = make(map[string]string, len(paths))
	for _, path := range paths {
		base := filepath.Base(path)
		display := strings.TrimSuffix(base, filepath.Ext(base))
		c.fileIndex[display] = path
	}

	displays := make([]string, 0, len(c.fileIndex))
	for display := range c.fileIndex {
		displays = append(displays, display)
	}
	sort.Slice(displays, func(i, j int) bool {
		return strings.ToLower(displays[i]) < strings.ToLower(displays[j])
	})

	choices := append([]string{AllFiles}, displays...)

	if _, ok := c.fileIndex[selectDisplay]; !ok && selectDisplay != AllFiles {
		selectDisplay = AllFiles
	}
	c.selection = selectDisplay
	c.view.SetFileChoices(choices, selectDisplay)
}

// SelectFile is called when the dropdown changes; it rebuilds the
// catalog for the new selection and re-applies the filters.
func (c *Controller) SelectFile(choice string) {
	if choice == c.selection && c.items != nil {
		return
	}
	c.selection = choice
	c.loadSelection()
	c.ApplyFilters()
}

// loadSelection replaces the in-memory catalog from the selected file,
// or from every file when "All files" is active.
func (c *Controller) loadSelection() {
	var paths []string
	if c.selection == AllFiles {
		for _, path := range c.fileIndex {
			paths = append(paths, path)
		}
		sort.Strings(paths)
	} else if path, ok := c.fileIndex[c.selection]; ok {
		paths = []string{path}
	}

	items, skips := catalog.Load(paths)
	c.items = items
	c.skips = skips

	c.view.SetSkipCount(len(skips))

	c.logger.Info("Controller", "catalog loaded", map[string]interface{}{
		"selection": c.selection,
		"files":     len(paths),
		"items":     len(items),
		"skipped":   len(skips),
	})

	for _, skip := range skips {
		c.logger.Warning("Controller", "skipped during load", map[string]interface{}{
			"file":   skip.File,
			"record": skip.Record,
			"reason": skip.Reason,
		})
	}
}

// NameChanged re-runs the query on every keystroke.
func (c *Controller) NameChanged(string) {
	c.ApplyFilters()
}

// ApplyFilters queries the current catalog with the view's filter
// controls and renders the result.
func (c *Controller) ApplyFilters() {
	filter, err := c.view.BuildFilter()
	if err != nil {
		c.handleError("Invalid range", err)
		return
	}

	results, err := catalog.Query(c.items, filter)
	if err != nil {
		c.handleError("Invalid range", err)
		return
	}

	if c.sortActive {
		results = catalog.SortItems(results, c.sortColumn, c.sortDescending)
	}

	c.render(results)
}

// ClearFilters resets the controls and shows the full catalog again.
func (c *Controller) ClearFilters() {
	c.view.ClearFilterControls()
	c.sortActive = false
	c.view.SetSortIndicator(0, false, false)
	c.ApplyFilters()
}

// SortByColumn handles a header tap: first tap sorts ascending, tapping
// the same column again flips the direction. Column 0 is the name, every
// denomination column orders by the copper value, so they all agree.
func (c *Controller) SortByColumn(column int) {
	target := catalog.SortByName
	if column > 0 {
		target = catalog.SortByPrice
	}

	if c.sortActive && c.sortColumn == target {
		c.sortDescending = !c.sortDescending
	} else {
		c.sortColumn = target
		c.sortDescending = false
	}
	c.sortActive = true

	c.view.SetSortIndicator(column, c.sortDescending, true)
	c.ApplyFilters()
}

// ImportJSON copies a user-chosen JSON file into the data folder and
// selects it.
func (c *Controller) ImportJSON() {
	c.view.ShowImportDialog([]string{".json"}, func(path string) {
		dst, err := c.store.ImportJSON(path)
		if err != nil {
			c.handleError("Import failed", err)
			return
		}
		c.afterImport(dst)
	})
}

// ImportXLSX converts a spreadsheet price list into the data folder and
// selects the result.
func (c *Controller) ImportXLSX() {
	c.view.ShowImportDialog([]string{".xlsx"}, func(path string) {
		dst, err := c.store.ImportXLSX(path)
		if err != nil {
			c.handleError("Import failed", err)
			return
		}
		c.afterImport(dst)
	})
}

func (c *Controller) afterImport(dst string) {
	base := filepath.Base(dst)
	display := strings.TrimSuffix(base, filepath.Ext(base))

	c.refreshFileList(display)
	c.loadSelection()
	c.ApplyFilters()

	c.view.ShowInfo("Imported", fmt.Sprintf("Copied into %s:\n%s", filepath.Base(c.store.DataDir()), base))
}

// ReloadFolder rescans the data folder, keeping the current selection
// when its file still exists.
func (c *Controller) ReloadFolder() {
	c.refreshFileList(c.selection)
	c.loadSelection()
	c.ApplyFilters()
}

// ShowSkips opens the details dialog for the last load's skip notices.
func (c *Controller) ShowSkips() {
	c.view.ShowSkipsDialog(c.skips)
}

func (c *Controller) render(results []catalog.Item) {
	rows := make([]widgets.Row, len(results))
	for i, item := range results {
		rows[i] = itemRow(item)
	}
	c.view.SetRows(rows)

	status := fmt.Sprintf("%d of %d item(s)", len(results), len(c.items))
	if len(c.skips) > 0 {
		status += fmt.Sprintf(", %d skipped", len(c.skips))
	}
	c.view.SetStatus(status)
}

// itemRow formats one item for the table. A record with a denomination
// outside the fixed set has no convertible value, so its price columns
// show the raw source amount in the name's column style.
func itemRow(item catalog.Item) widgets.Row {
	row := widgets.Row{Name: item.Name}

	if !item.BaseOK {
		for i := range row.Cells {
			row.Cells[i] = "-"
		}
		row.Name = fmt.Sprintf("%s (%s %s)", item.Name, item.Amount, item.Denomination)
		return row
	}

	breakdown := catalog.Breakdown(item.BaseValue)
	for i, d := range catalog.Denominations {
		row.Cells[i] = formatAmount(breakdown[d])
	}
	return row
}

// formatAmount prints whole numbers bare and everything else with two
// decimal places, matching the table's compact look.
func formatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.String()
	}
	return d.StringFixed(2)
}

func (c *Controller) handleError(title string, err error) {
	c.logger.Error("Controller", err, map[string]interface{}{
		"title": title,
	})
	c.view.ShowError(title, err)
}

// Cleanup
func (c *Controller) Shutdown() {
	c.logger.Info("Controller", "shutdown completed", nil)
}
