package catalog

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one priced object from a catalog file. Items are built once at
// load time and never mutated; reloads replace the whole slice.
type Item struct {
	ID           string
	Name         string
	Amount       decimal.Decimal
	Denomination Denomination
	SourceFile   string

	// BaseValue is the price in copper pieces. BaseOK is false when the
	// source record carried a denomination outside the fixed set; such
	// items still appear in unfiltered listings but never match a price
	// range.
	BaseValue int64
	BaseOK    bool

	// Extra carries unrecognized source fields through for display.
	Extra map[string]json.RawMessage
}

// NewItem validates a raw record and computes its copper value. The
// returned error describes why the record must be skipped; an item with
// an unknown denomination tag is not an error, it is returned with
// BaseOK unset.
func NewItem(name string, amount decimal.Decimal, unit string, sourceFile string, extra map[string]json.RawMessage) (Item, error) {
	item := Item{
		ID:         uuid.NewString(),
		Name:       name,
		Amount:     amount,
		SourceFile: sourceFile,
		Extra:      extra,
	}

	d, err := ParseDenomination(unit)
	if err != nil {
		item.Denomination = Denomination(unit)
		return item, nil
	}
	item.Denomination = d

	base, err := ToBaseUnits(amount, d)
	if err != nil {
		return Item{}, err
	}
	item.BaseValue = base
	item.BaseOK = true
	return item, nil
}
