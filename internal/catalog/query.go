package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Filter describes one search request. Bounds are expressed in the unit
// the user picked and converted to copper before comparison, so the same
// range matches the same items no matter which denomination each record
// was priced in.
type Filter struct {
	Name   string
	Min    *decimal.Decimal
	Max    *decimal.Decimal
	Bounds Denomination
}

func (f Filter) hasRange() bool {
	return f.Min != nil || f.Max != nil
}

// Query returns the items matching the filter, preserving input order.
// Name matching is case-insensitive substring containment; an empty
// substring matches everything. Both predicates must hold. Items whose
// denomination is outside the fixed set pass only while no price bound is
// set: display tolerates bad data, filtering does not.
//
// Query is pure and cheap enough to re-run on every keystroke.
func Query(items []Item, f Filter) ([]Item, error) {
	var minBase, maxBase int64
	if f.Min != nil {
		v, err := ToBaseUnits(*f.Min, f.Bounds)
		if err != nil {
			return nil, err
		}
		minBase = v
	}
	if f.Max != nil {
		v, err := ToBaseUnits(*f.Max, f.Bounds)
		if err != nil {
			return nil, err
		}
		maxBase = v
	}

	needle := strings.ToLower(strings.TrimSpace(f.Name))
	ranged := f.hasRange()

	out := make([]Item, 0, len(items))
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if ranged {
			if !item.BaseOK {
				continue
			}
			if f.Min != nil && item.BaseValue < minBase {
				continue
			}
			if f.Max != nil && item.BaseValue > maxBase {
				continue
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// SortColumn selects what SortItems orders by.
type SortColumn int

const (
	SortByName SortColumn = iota
	SortByPrice
)

// SortItems returns a new slice ordered by the given column. Sorting is
// stable and idempotent, applied after filtering rather than fused into
// it. Price ordering uses copper values; items with an invalid
// denomination sort after everything else.
func SortItems(items []Item, column SortColumn, descending bool) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	less := func(a, b Item) bool {
		switch column {
		case SortByPrice:
			if a.BaseOK != b.BaseOK {
				return a.BaseOK
			}
			if a.BaseValue != b.BaseValue {
				return a.BaseValue < b.BaseValue
			}
			return false
		default:
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if an != bn {
				return an < bn
			}
			return false
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
