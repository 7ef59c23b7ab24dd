package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/goldenanvil/compendium/internal/catalog"
)

func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "market.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestImportXLSX(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureDataDir())

	src := writeSheet(t, [][]interface{}{
		{"Name", "Price", "Unit", "Weight"},
		{"Dagger", 2, "gp", "1 lb."},
		{"Rope (50 ft)", "1", "sp", nil},
		{"", 5, "gp", nil}, // no name, dropped during conversion
	})

	dst, err := store.ImportXLSX(src)
	require.NoError(t, err)
	assert.Equal(t, "market.json", filepath.Base(dst))

	// The converted file must load like any hand-written catalog.
	items, skips := catalog.Load([]string{dst})
	require.Empty(t, skips)
	require.Len(t, items, 2)

	assert.Equal(t, "Dagger", items[0].Name)
	assert.Equal(t, catalog.Gold, items[0].Denomination)
	assert.Equal(t, int64(200), items[0].BaseValue)
	assert.Contains(t, items[0].Extra, "weight")

	assert.Equal(t, "Rope (50 ft)", items[1].Name)
	assert.Equal(t, int64(10), items[1].BaseValue)
}

func TestImportXLSXRequiresColumns(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureDataDir())

	src := writeSheet(t, [][]interface{}{
		{"Name", "Cost"},
		{"Dagger", 2},
	})

	_, err := store.ImportXLSX(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestImportXLSXRejectsEmptySheet(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureDataDir())

	src := writeSheet(t, [][]interface{}{
		{"Name", "Price", "Unit"},
	})

	_, err := store.ImportXLSX(src)
	assert.Error(t, err)
}

func TestImportXLSXRejectsNonSpreadsheet(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureDataDir())

	src := filepath.Join(t.TempDir(), "fake.xlsx")
	require.NoError(t, os.WriteFile(src, []byte("not a spreadsheet"), 0o644))

	_, err := store.ImportXLSX(src)
	assert.Error(t, err)
}
