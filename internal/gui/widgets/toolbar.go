package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the catalog file selector, the import/reload buttons and
// the status line.
type Toolbar struct {
	container   *fyne.Container
	fileSelect  *widget.Select
	statusLabel *widget.Label
	skipsButton *widget.Button

	fileSelectedHandler func(string)
	importJSONHandler   func()
	importXLSXHandler   func()
	reloadHandler       func()
	clearHandler        func()
	showSkipsHandler    func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.fileSelect = widget.NewSelect(nil, t.onFileSelected)

	t.statusLabel = widget.NewLabel("Ready")

	t.skipsButton = widget.NewButton("Skipped records...", t.onShowSkips)
	t.skipsButton.Importance = widget.MediumImportance
	t.skipsButton.Hide()
}

func (t *Toolbar) buildLayout() {
	importJSON := widget.NewButton("Load JSON...", t.onImportJSON)
	importXLSX := widget.NewButton("Load Spreadsheet...", t.onImportXLSX)
	reload := widget.NewButton("Reload Folder", t.onReload)
	clear := widget.NewButton("Clear Filters", t.onClear)

	fileGroup := container.NewHBox(
		widget.NewLabel("File"),
		t.fileSelect,
	)

	actionGroup := container.NewHBox(
		importJSON,
		importXLSX,
		widget.NewSeparator(),
		reload,
		clear,
	)

	statusGroup := container.NewHBox(
		t.statusLabel,
		t.skipsButton,
	)

	content := container.NewHBox(
		fileGroup,
		widget.NewSeparator(),
		actionGroup,
		widget.NewSeparator(),
		statusGroup,
	)

	t.container = container.NewPadded(content)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// SetFileChoices replaces the dropdown entries and selects the given one.
// Re-selecting the already-active entry only refreshes the widget, so the
// selection handler does not fire twice.
func (t *Toolbar) SetFileChoices(choices []string, selected string) {
	t.fileSelect.Options = choices
	if t.fileSelect.Selected == selected {
		t.fileSelect.Refresh()
		return
	}
	t.fileSelect.SetSelected(selected)
}

func (t *Toolbar) SelectedFile() string {
	return t.fileSelect.Selected
}

func (t *Toolbar) SetStatus(status string) {
	t.statusLabel.SetText(status)
}

// SetSkipCount shows the skipped-records button when anything was dropped
// during the last load.
func (t *Toolbar) SetSkipCount(count int) {
	if count == 0 {
		t.skipsButton.Hide()
		return
	}
	t.skipsButton.Show()
}

// Event handler setters
func (t *Toolbar) SetFileSelectedHandler(handler func(string)) {
	t.fileSelectedHandler = handler
}

func (t *Toolbar) SetImportJSONHandler(handler func()) {
	t.importJSONHandler = handler
}

func (t *Toolbar) SetImportXLSXHandler(handler func()) {
	t.importXLSXHandler = handler
}

func (t *Toolbar) SetReloadHandler(handler func()) {
	t.reloadHandler = handler
}

func (t *Toolbar) SetClearHandler(handler func()) {
	t.clearHandler = handler
}

func (t *Toolbar) SetShowSkipsHandler(handler func()) {
	t.showSkipsHandler = handler
}

func (t *Toolbar) onFileSelected(choice string) {
	if t.fileSelectedHandler != nil {
		t.fileSelectedHandler(choice)
	}
}

func (t *Toolbar) onImportJSON() {
	if t.importJSONHandler != nil {
		t.importJSONHandler()
	}
}

func (t *Toolbar) onImportXLSX() {
	if t.importXLSXHandler != nil {
		t.importXLSXHandler()
	}
}

func (t *Toolbar) onReload() {
	if t.reloadHandler != nil {
		t.reloadHandler()
	}
}

func (t *Toolbar) onClear() {
	if t.clearHandler != nil {
		t.clearHandler()
	}
}

func (t *Toolbar) onShowSkips() {
	if t.showSkipsHandler != nil {
		t.showSkipsHandler()
	}
}
