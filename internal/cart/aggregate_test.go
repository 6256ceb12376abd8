package cart

import (
	"testing"

	"ecowaste_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(productID string, price float64) models.CartEntry {
	return models.CartEntry{ProductID: productID, Name: "deal " + productID, UnitPrice: price, Image: productID + ".jpg"}
}

func TestSummarize_Empty(t *testing.T) {
	lines, total := Summarize(nil)

	assert.Empty(t, lines)
	assert.Zero(t, total)
}

func TestSummarize_TotalEqualsSumOfEntryPrices(t *testing.T) {
	cases := [][]models.CartEntry{
		{entry("a", 2.50)},
		{entry("a", 2.50), entry("a", 2.50), entry("b", 1.00)},
		{entry("a", 0), entry("b", -3.25), entry("a", 0)},
	}

	for _, entries := range cases {
		var want float64
		for _, e := range entries {
			want += e.UnitPrice
		}
		_, total := Summarize(entries)
		assert.InDelta(t, want, total, 1e-9)
	}
}

func TestSummarize_GroupingIsStable(t *testing.T) {
	lines, _ := Summarize([]models.CartEntry{entry("a", 2.0), entry("b", 1.0), entry("a", 2.0)})

	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "b", lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestSummarize_FirstPriceWins(t *testing.T) {
	first := entry("a", 4.99)
	later := entry("a", 2.99) // flash discount applied between adds
	later.Name = "renamed"

	lines, total := Summarize([]models.CartEntry{first, later})

	require.Len(t, lines, 1)
	assert.Equal(t, 4.99, lines[0].UnitPrice)
	assert.Equal(t, first.Name, lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.InDelta(t, 9.98, total, 1e-9)
}
