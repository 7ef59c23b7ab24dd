package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/goldenanvil/compendium/internal/catalog"
	"github.com/goldenanvil/compendium/internal/gui/widgets"
)

// View handles all UI components and their layout
type View struct {
	window     fyne.Window
	controller *Controller

	// UI components
	toolbar       *widgets.Toolbar
	filterPanel   *widgets.FilterPanel
	catalogTable  *widgets.CatalogTable
	mainContainer *fyne.Container
}

func NewView(window fyne.Window) *View {
	view := &View{
		window: window,
	}

	view.setupComponents()
	view.setupLayout()

	return view
}

func (v *View) SetController(controller *Controller) {
	v.controller = controller
	v.setupEventHandlers()
}

func (v *View) setupComponents() {
	v.toolbar = widgets.NewToolbar()
	v.filterPanel = widgets.NewFilterPanel()
	v.catalogTable = widgets.NewCatalogTable()
}

func (v *View) setupLayout() {
	top := container.NewVBox(
		v.toolbar.GetContainer(),
		widget.NewSeparator(),
		v.filterPanel.GetContainer(),
		widget.NewSeparator(),
	)

	v.mainContainer = container.NewBorder(
		top, nil, nil, nil,
		v.catalogTable.GetContainer(),
	)
}

func (v *View) setupEventHandlers() {
	if v.controller == nil {
		return
	}

	v.toolbar.SetFileSelectedHandler(v.controller.SelectFile)
	v.toolbar.SetImportJSONHandler(v.controller.ImportJSON)
	v.toolbar.SetImportXLSXHandler(v.controller.ImportXLSX)
	v.toolbar.SetReloadHandler(v.controller.ReloadFolder)
	v.toolbar.SetClearHandler(v.controller.ClearFilters)
	v.toolbar.SetShowSkipsHandler(v.controller.ShowSkips)

	v.filterPanel.SetNameChangedHandler(v.controller.NameChanged)
	v.filterPanel.SetApplyHandler(v.controller.ApplyFilters)

	v.catalogTable.SetHeaderTappedHandler(v.controller.SortByColumn)
}

// Public interface for controller
func (v *View) GetMainContainer() *fyne.Container {
	return v.mainContainer
}

func (v *View) SetFileChoices(choices []string, selected string) {
	v.toolbar.SetFileChoices(choices, selected)
}

func (v *View) SelectedFile() string {
	return v.toolbar.SelectedFile()
}

func (v *View) BuildFilter() (catalog.Filter, error) {
	return v.filterPanel.BuildFilter()
}

func (v *View) ClearFilterControls() {
	v.filterPanel.Clear()
}

func (v *View) SetRows(rows []widgets.Row) {
	v.catalogTable.SetRows(rows)
}

func (v *View) SetSortIndicator(column int, descending, active bool) {
	v.catalogTable.SetSortIndicator(column, descending, active)
}

func (v *View) SetStatus(status string) {
	v.toolbar.SetStatus(status)
}

func (v *View) SetSkipCount(count int) {
	v.toolbar.SetSkipCount(count)
}

func (v *View) ShowError(title string, err error) {
	dialog.ShowError(err, v.window)
}

func (v *View) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, v.window)
}

// ShowSkipsDialog lists every file and record dropped during the last
// load, with the reason for each.
func (v *View) ShowSkipsDialog(skips []catalog.LoadError) {
	if len(skips) == 0 {
		dialog.ShowInformation("Skipped records", "Nothing was skipped.", v.window)
		return
	}

	lines := make([]string, len(skips))
	for i, skip := range skips {
		lines[i] = skip.Error()
	}

	content := widget.NewLabel(strings.Join(lines, "\n"))
	content.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(
		fmt.Sprintf("Skipped %d record(s)", len(skips)),
		"Close",
		container.NewVScroll(content),
		v.window,
	)
	d.Resize(fyne.NewSize(560, 360))
	d.Show()
}

// ShowImportDialog opens a file picker restricted to the given
// extensions and hands the chosen path to the callback.
func (v *View) ShowImportDialog(extensions []string, callback func(path string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			v.ShowError("File selection error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path)
	}, v.window)

	fileDialog.SetFilter(fynestorage.NewExtensionFileFilter(extensions))
	fileDialog.Show()
}

// Window management
func (v *View) GetWindow() fyne.Window {
	return v.window
}

func (v *View) Show() {
	v.window.SetContent(v.mainContainer)
	v.window.Show()
}

func (v *View) Shutdown() {
	// View cleanup if needed
}
