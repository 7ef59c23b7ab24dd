package widgets

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/goldenanvil/compendium/internal/catalog"
	"github.com/shopspring/decimal"
)

// FilterPanel holds the search controls: name substring, min/max price
// and the unit the bounds are expressed in.
type FilterPanel struct {
	container  *fyne.Container
	nameEntry  *widget.Entry
	minEntry   *widget.Entry
	maxEntry   *widget.Entry
	unitSelect *widget.Select

	nameChangedHandler func(string)
	applyHandler       func()
}

func NewFilterPanel() *FilterPanel {
	panel := &FilterPanel{}
	panel.createComponents()
	panel.buildLayout()
	return panel
}

func (p *FilterPanel) createComponents() {
	p.nameEntry = widget.NewEntry()
	p.nameEntry.SetPlaceHolder("Search name")
	p.nameEntry.OnChanged = p.onNameChanged
	p.nameEntry.OnSubmitted = func(string) { p.onApply() }

	p.minEntry = widget.NewEntry()
	p.minEntry.SetPlaceHolder("Min price")
	p.minEntry.OnSubmitted = func(string) { p.onApply() }

	p.maxEntry = widget.NewEntry()
	p.maxEntry.SetPlaceHolder("Max price")
	p.maxEntry.OnSubmitted = func(string) { p.onApply() }

	units := make([]string, len(catalog.Denominations))
	for i, d := range catalog.Denominations {
		units[i] = string(d)
	}
	p.unitSelect = widget.NewSelect(units, func(string) { p.onApply() })
	p.unitSelect.Selected = string(catalog.Gold)
}

func (p *FilterPanel) buildLayout() {
	apply := widget.NewButton("Apply Filters", p.onApply)
	apply.Importance = widget.HighImportance

	nameGroup := container.NewVBox(
		widget.NewLabel("Search name"),
		p.nameEntry,
	)

	rangeGroup := container.NewVBox(
		widget.NewLabel("Price range"),
		container.NewHBox(p.minEntry, p.maxEntry, p.unitSelect),
	)

	content := container.NewHBox(
		nameGroup,
		widget.NewSeparator(),
		rangeGroup,
		widget.NewSeparator(),
		apply,
	)

	p.container = container.NewPadded(content)
}

func (p *FilterPanel) GetContainer() *fyne.Container {
	return p.container
}

// BuildFilter reads the current control values into a catalog filter. A
// min/max entry that is not a number is an error the caller surfaces to
// the user.
func (p *FilterPanel) BuildFilter() (catalog.Filter, error) {
	f := catalog.Filter{
		Name:   p.nameEntry.Text,
		Bounds: catalog.Denomination(p.unitSelect.Selected),
	}

	parse := func(text, label string) (*decimal.Decimal, error) {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, nil
		}
		v, err := decimal.NewFromString(text)
		if err != nil {
			return nil, fmt.Errorf("%s price %q is not a number", label, text)
		}
		return &v, nil
	}

	var err error
	if f.Min, err = parse(p.minEntry.Text, "min"); err != nil {
		return catalog.Filter{}, err
	}
	if f.Max, err = parse(p.maxEntry.Text, "max"); err != nil {
		return catalog.Filter{}, err
	}
	return f, nil
}

// Clear resets every control to its default without firing the
// per-keystroke handler.
func (p *FilterPanel) Clear() {
	handler := p.nameChangedHandler
	p.nameChangedHandler = nil

	p.nameEntry.SetText("")
	p.minEntry.SetText("")
	p.maxEntry.SetText("")
	p.unitSelect.Selected = string(catalog.Gold)
	p.unitSelect.Refresh()

	p.nameChangedHandler = handler
}

func (p *FilterPanel) SetNameChangedHandler(handler func(string)) {
	p.nameChangedHandler = handler
}

func (p *FilterPanel) SetApplyHandler(handler func()) {
	p.applyHandler = handler
}

func (p *FilterPanel) onNameChanged(text string) {
	if p.nameChangedHandler != nil {
		p.nameChangedHandler(text)
	}
}

func (p *FilterPanel) onApply() {
	if p.applyHandler != nil {
		p.applyHandler()
	}
}
