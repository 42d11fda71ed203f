package model

// Event is a campus event that users can register for.
type Event struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	Image           string `json:"image,omitempty"`
	Category        string `json:"category"`
	RegisteredCount int    `json:"registered_count"`
	MaxCapacity     int    `json:"max_capacity"`
	IsRegistered    bool   `json:"is_registered"`
}

// Event categories.
const (
	EventCategoryAcademic = "academic"
	EventCategoryCultural = "cultural"
	EventCategorySports   = "sports"
	EventCategoryWorkshop = "workshop"
)

// EventCategories lists every event category in display order.
var EventCategories = []string{
	EventCategoryAcademic,
	EventCategoryCultural,
	EventCategorySports,
	EventCategoryWorkshop,
}

func (e Event) CategoryName() string { return e.Category }

func (e Event) SearchFields() []string { return []string{e.Title, e.Description} }
