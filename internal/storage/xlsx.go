package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxRow mirrors the JSON record shape the loader expects. Extra sheet
// columns ride along as string fields.
type xlsxRow map[string]interface{}

// ImportXLSX converts a spreadsheet price list into a JSON catalog file
// inside the data folder. The first sheet is read; its header row must
// name "name", "price" and "unit" columns (any case, any order). Rows
// without a name are dropped here, everything else is validated by the
// catalog loader like any other file.
func (s *Store) ImportXLSX(srcPath string) (string, error) {
	f, err := excelize.OpenFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open spreadsheet %s: %w", srcPath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("spreadsheet %s has no sheets", srcPath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return "", fmt.Errorf("spreadsheet %s has no data rows", srcPath)
	}

	header := rows[0]
	columns := make(map[int]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		if key == "" || seen[key] {
			continue
		}
		columns[i] = key
		seen[key] = true
	}
	for _, required := range []string{"name", "price", "unit"} {
		if !seen[required] {
			return "", fmt.Errorf("spreadsheet %s is missing a %q column", srcPath, required)
		}
	}

	var records []xlsxRow
	for _, row := range rows[1:] {
		rec := make(xlsxRow, len(columns))
		for i, key := range columns {
			if i >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[i])
			if value == "" {
				continue
			}
			rec[key] = value
		}
		if _, ok := rec["name"]; !ok {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("spreadsheet %s produced no records", srcPath)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	name := dedupeFilename(s.dataDir, base+".json")
	dst := filepath.Join(s.dataDir, name)

	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}

	s.logger.Info("Store", "converted spreadsheet to catalog file", map[string]interface{}{
		"source":  srcPath,
		"dest":    dst,
		"records": len(records),
	})
	return dst, nil
}
