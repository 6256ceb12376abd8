package cart

import "ecowaste_back_end/internal/models"

// Summarize collapses the flat entry list into per-product lines plus a grand
// total. Grouping preserves first-appearance order, and a group's name, price
// and image come from the first entry seen for that product id — if the deal
// price changed between two adds, the later price is ignored.
func Summarize(entries []models.CartEntry) ([]models.CartLine, float64) {
	lines := []models.CartLine{}
	index := make(map[string]int, len(entries))

	for _, e := range entries {
		if i, ok := index[e.ProductID]; ok {
			lines[i].Quantity++
			continue
		}
		index[e.ProductID] = len(lines)
		lines = append(lines, models.CartLine{
			ProductID: e.ProductID,
			Name:      e.Name,
			UnitPrice: e.UnitPrice,
			Image:     e.Image,
			Quantity:  1,
		})
	}

	var total float64
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return lines, total
}
