package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"
)

// LoadError records one skipped file or record. Record is empty for
// file-level failures.
type LoadError struct {
	File   string
	Record string
	Reason string
}

func (e LoadError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Reason)
	}
	return fmt.Sprintf("%s: record %q: %s", e.File, e.Record, e.Reason)
}

// Load reads every path as a JSON catalog file and concatenates the valid
// records in path order. A malformed file or record is reported as a skip
// and never aborts the remaining work; callers always get a usable slice
// plus the list of what was dropped.
//
// Two file shapes are accepted: an array of objects with at least "name",
// "price" and "unit" fields, and the legacy flat map of item name to a
// gold-piece amount.
func Load(paths []string) ([]Item, []LoadError) {
	var items []Item
	var skips []LoadError

	for _, path := range paths {
		fileItems, fileSkips := loadFile(path)
		items = append(items, fileItems...)
		skips = append(skips, fileSkips...)
	}
	return items, skips
}

func loadFile(path string) ([]Item, []LoadError) {
	source := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []LoadError{{File: source, Reason: err.Error()}}
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, []LoadError{{File: source, Reason: "empty file"}}
	}

	switch trimmed[0] {
	case '[':
		return loadRecordArray(source, data)
	case '{':
		return loadLegacyMap(source, data)
	default:
		return nil, []LoadError{{File: source, Reason: "not a JSON array or object"}}
	}
}

// rawRecord holds one array-form entry before validation. Unknown fields
// are kept aside so they can be passed through for display.
type rawRecord map[string]json.RawMessage

func loadRecordArray(source string, data []byte) ([]Item, []LoadError) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, []LoadError{{File: source, Reason: fmt.Sprintf("malformed JSON: %v", err)}}
	}

	var items []Item
	var skips []LoadError
	for i, rec := range raw {
		item, err := buildItem(source, rec)
		if err != nil {
			skips = append(skips, LoadError{
				File:   source,
				Record: recordLabel(rec, i),
				Reason: err.Error(),
			})
			continue
		}
		items = append(items, item)
	}
	return items, skips
}

func buildItem(source string, rec rawRecord) (Item, error) {
	nameRaw, ok := rec["name"]
	if !ok {
		return Item{}, fmt.Errorf("missing required field %q", "name")
	}
	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil {
		return Item{}, fmt.Errorf("field %q is not a string", "name")
	}
	if name == "" {
		return Item{}, fmt.Errorf("field %q is empty", "name")
	}

	priceRaw, ok := rec["price"]
	if !ok {
		return Item{}, fmt.Errorf("missing required field %q", "price")
	}
	var amount decimal.Decimal
	if err := json.Unmarshal(priceRaw, &amount); err != nil {
		return Item{}, fmt.Errorf("field %q is not a number", "price")
	}

	unitRaw, ok := rec["unit"]
	if !ok {
		return Item{}, fmt.Errorf("missing required field %q", "unit")
	}
	var unit string
	if err := json.Unmarshal(unitRaw, &unit); err != nil {
		return Item{}, fmt.Errorf("field %q is not a string", "unit")
	}

	extra := make(map[string]json.RawMessage)
	for k, v := range rec {
		switch k {
		case "name", "price", "unit":
		default:
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		extra = nil
	}

	return NewItem(name, amount, unit, source, extra)
}

func recordLabel(rec rawRecord, index int) string {
	var name string
	if raw, ok := rec["name"]; ok && json.Unmarshal(raw, &name) == nil && name != "" {
		return name
	}
	return fmt.Sprintf("#%d", index)
}

// loadLegacyMap handles the flat {"Item Name": <gp amount>} shape the
// original starter file shipped in. Map order is not defined by the JSON
// decoder, so entries are ordered by name to keep reloads deterministic.
func loadLegacyMap(source string, data []byte) ([]Item, []LoadError) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, []LoadError{{File: source, Reason: fmt.Sprintf("malformed JSON: %v", err)}}
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	var items []Item
	var skips []LoadError
	for _, name := range names {
		var amount decimal.Decimal
		if err := json.Unmarshal(raw[name], &amount); err != nil {
			skips = append(skips, LoadError{
				File:   source,
				Record: name,
				Reason: "price is not a number",
			})
			continue
		}

		item, err := NewItem(name, amount, string(Gold), source, nil)
		if err != nil {
			skips = append(skips, LoadError{File: source, Record: name, Reason: err.Error()})
			continue
		}
		items = append(items, item)
	}
	return items, skips
}
