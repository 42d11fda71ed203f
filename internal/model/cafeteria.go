package model

// CafeteriaItem is a menu entry.
type CafeteriaItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Category     string  `json:"category"`
	Availability bool    `json:"availability"`
	Rating       float64 `json:"rating"`
}

// Menu categories.
const (
	MenuCategoryMain      = "main"
	MenuCategorySnacks    = "snacks"
	MenuCategoryBeverages = "beverages"
	MenuCategoryDesserts  = "desserts"
)

// MenuCategories lists every menu category in display order.
var MenuCategories = []string{
	MenuCategoryMain,
	MenuCategorySnacks,
	MenuCategoryBeverages,
	MenuCategoryDesserts,
}

func (c CafeteriaItem) CategoryName() string { return c.Category }

func (c CafeteriaItem) SearchFields() []string { return []string{c.Name} }

// QueueStatus is the display-only queue snapshot for one cafeteria.
type QueueStatus struct {
	CafeteriaID   string `json:"cafeteria_id"`
	Name          string `json:"name"`
	CurrentQueue  int    `json:"current_queue"`
	EstimatedWait int    `json:"estimated_wait"`
	Status        string `json:"status"`
	LastUpdated   string `json:"last_updated"`
}

// Queue levels.
const (
	QueueLow    = "low"
	QueueMedium = "medium"
	QueueHigh   = "high"
)
