package model

// LostFoundItem is a lost or found item report.
type LostFoundItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	DateReported string `json:"date_reported"`
	ReportedBy   string `json:"reported_by"`
	ContactInfo  string `json:"contact_info"`

	// Uploaded photo, served separately from the listing.
	Photo     []byte `json:"-"`
	PhotoMIME string `json:"photo_mime,omitempty"`
}

// Lost-and-found categories.
const (
	ItemCategoryElectronics = "electronics"
	ItemCategoryClothing    = "clothing"
	ItemCategoryBooks       = "books"
	ItemCategoryAccessories = "accessories"
	ItemCategoryOther       = "other"
)

// ItemCategories lists every lost-and-found category in display order.
var ItemCategories = []string{
	ItemCategoryElectronics,
	ItemCategoryClothing,
	ItemCategoryBooks,
	ItemCategoryAccessories,
	ItemCategoryOther,
}

// Lost-and-found statuses. Claimed is terminal.
const (
	ItemStatusLost    = "lost"
	ItemStatusFound   = "found"
	ItemStatusClaimed = "claimed"
)

func (i LostFoundItem) CategoryName() string { return i.Category }

func (i LostFoundItem) SearchFields() []string { return []string{i.Title, i.Description} }
