package types

// DisplayOrder returns a new slice with every out_of_stock item moved
// after every other item. The relative order within each of the two
// groups is preserved (stable partition). The input slice is not
// modified.
func DisplayOrder(items []Item) []Item {
	stocked := make([]Item, 0, len(items))
	var depleted []Item
	for _, it := range items {
		if it.Status == StatusOutOfStock {
			depleted = append(depleted, it)
		} else {
			stocked = append(stocked, it)
		}
	}
	return append(stocked, depleted...)
}
