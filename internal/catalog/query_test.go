package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name, amount, unit string) Item {
	t.Helper()
	item, err := NewItem(name, decimal.RequireFromString(amount), unit, "test.json", nil)
	require.NoError(t, err)
	return item
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestQueryNameAndRange(t *testing.T) {
	items := []Item{
		mustItem(t, "Dagger", "2", "cp"),
		mustItem(t, "Sword", "15", "gp"),
	}

	got, err := Query(items, Filter{Name: "sword", Min: dec("10"), Max: dec("20"), Bounds: Gold})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sword"}, names(got))
}

func TestQueryEmptySubstringMatchesAll(t *testing.T) {
	items := []Item{
		mustItem(t, "Dagger", "2", "cp"),
		mustItem(t, "Sword", "15", "gp"),
		mustItem(t, "Shield", "10", "gp"),
	}

	got, err := Query(items, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dagger", "Sword", "Shield"}, names(got))
}

func TestQueryIsCaseInsensitive(t *testing.T) {
	items := []Item{mustItem(t, "Longsword", "15", "gp")}

	got, err := Query(items, Filter{Name: "LONG"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestQueryBoundsAreInclusive(t *testing.T) {
	items := []Item{
		mustItem(t, "Cheap", "9", "gp"),
		mustItem(t, "Low", "10", "gp"),
		mustItem(t, "High", "20", "gp"),
		mustItem(t, "Dear", "21", "gp"),
	}

	got, err := Query(items, Filter{Min: dec("10"), Max: dec("20"), Bounds: Gold})
	require.NoError(t, err)
	assert.Equal(t, []string{"Low", "High"}, names(got))
}

func TestQueryBoundsConvertAcrossDenominations(t *testing.T) {
	// 1000 cp and 1 pp price the same; bounds given in silver must match both.
	items := []Item{
		mustItem(t, "Ingot", "1000", "cp"),
		mustItem(t, "Bar", "1", "pp"),
		mustItem(t, "Pebble", "1", "cp"),
	}

	got, err := Query(items, Filter{Min: dec("100"), Max: dec("100"), Bounds: Silver})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ingot", "Bar"}, names(got))
}

func TestQueryInvalidDenominationShownOnlyUnfiltered(t *testing.T) {
	bad, err := NewItem("Relic", decimal.NewFromInt(5), "zp", "test.json", nil)
	require.NoError(t, err)
	require.False(t, bad.BaseOK)

	items := []Item{mustItem(t, "Sword", "15", "gp"), bad}

	unfiltered, err := Query(items, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sword", "Relic"}, names(unfiltered))

	ranged, err := Query(items, Filter{Min: dec("0"), Bounds: Gold})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sword"}, names(ranged))
}

func TestQueryRejectsBadBoundsUnit(t *testing.T) {
	items := []Item{mustItem(t, "Sword", "15", "gp")}

	_, err := Query(items, Filter{Min: dec("1"), Bounds: Denomination("zp")})
	assert.ErrorIs(t, err, ErrInvalidDenomination)
}

func TestQueryIsIdempotent(t *testing.T) {
	items := []Item{
		mustItem(t, "Dagger", "2", "cp"),
		mustItem(t, "Sword", "15", "gp"),
		mustItem(t, "Shortsword", "10", "gp"),
	}
	f := Filter{Name: "sword", Min: dec("5"), Max: dec("20"), Bounds: Gold}

	once, err := Query(items, f)
	require.NoError(t, err)
	twice, err := Query(once, f)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestQueryPreservesInputOrder(t *testing.T) {
	items := []Item{
		mustItem(t, "Zweihander", "50", "gp"),
		mustItem(t, "Axe", "10", "gp"),
		mustItem(t, "Mace", "5", "gp"),
	}

	got, err := Query(items, Filter{Min: dec("1"), Bounds: Gold})
	require.NoError(t, err)
	assert.Equal(t, []string{"Zweihander", "Axe", "Mace"}, names(got))
}

func TestSortItemsByName(t *testing.T) {
	items := []Item{
		mustItem(t, "sword", "15", "gp"),
		mustItem(t, "Axe", "10", "gp"),
		mustItem(t, "Mace", "5", "gp"),
	}

	got := SortItems(items, SortByName, false)
	assert.Equal(t, []string{"Axe", "Mace", "sword"}, names(got))

	desc := SortItems(items, SortByName, true)
	assert.Equal(t, []string{"sword", "Mace", "Axe"}, names(desc))

	// Input untouched.
	assert.Equal(t, []string{"sword", "Axe", "Mace"}, names(items))
}

func TestSortItemsByPriceUsesBaseUnits(t *testing.T) {
	items := []Item{
		mustItem(t, "Bar", "1", "pp"),      // 1000 cp
		mustItem(t, "Dagger", "200", "cp"), // 200 cp
		mustItem(t, "Gem", "5", "gp"),      // 500 cp
	}

	got := SortItems(items, SortByPrice, false)
	assert.Equal(t, []string{"Dagger", "Gem", "Bar"}, names(got))
}

func TestSortItemsStableAndIdempotent(t *testing.T) {
	items := []Item{
		mustItem(t, "First", "10", "gp"),
		mustItem(t, "Second", "10", "gp"),
		mustItem(t, "Third", "10", "gp"),
	}

	once := SortItems(items, SortByPrice, false)
	assert.Equal(t, []string{"First", "Second", "Third"}, names(once))

	twice := SortItems(once, SortByPrice, false)
	assert.Equal(t, once, twice)
}

func TestSortItemsPlacesInvalidDenominationsLast(t *testing.T) {
	bad, err := NewItem("Relic", decimal.NewFromInt(1), "zp", "test.json", nil)
	require.NoError(t, err)

	items := []Item{bad, mustItem(t, "Sword", "15", "gp")}

	got := SortItems(items, SortByPrice, false)
	assert.Equal(t, []string{"Sword", "Relic"}, names(got))
}
