package catalog

import "github.com/erazemk/kampus/internal/model"

// FilterItems is Filter with an additional status selector. Status All
// (or "") matches every status.
func FilterItems(items []model.LostFoundItem, category, status, query string) []model.LostFoundItem {
	out := make([]model.LostFoundItem, 0, len(items))
	for _, it := range Filter(items, category, query) {
		if status == "" || status == All || it.Status == status {
			out = append(out, it)
		}
	}
	return out
}

// Claim marks the item with the given id as claimed, whatever its status.
func Claim(items []model.LostFoundItem, id string) []model.LostFoundItem {
	out := make([]model.LostFoundItem, len(items))
	for i, it := range items {
		if it.ID == id {
			it.Status = model.ItemStatusClaimed
		}
		out[i] = it
	}
	return out
}

// Report prepends a new item.
func Report(items []model.LostFoundItem, item model.LostFoundItem) []model.LostFoundItem {
	out := make([]model.LostFoundItem, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// FindItem returns the item with the given id.
func FindItem(items []model.LostFoundItem, id string) (model.LostFoundItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return model.LostFoundItem{}, false
}

// CountStatus counts items with the given status.
func CountStatus(items []model.LostFoundItem, status string) int {
	n := 0
	for _, it := range items {
		if it.Status == status {
			n++
		}
	}
	return n
}
