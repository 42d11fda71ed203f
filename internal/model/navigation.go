package model

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NavigationPoint is a point of interest on the campus map.
type NavigationPoint struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	Description string      `json:"description,omitempty"`
}

// Point categories.
const (
	PointCategoryAcademic  = "academic"
	PointCategoryFacility  = "facility"
	PointCategoryFood      = "food"
	PointCategoryTransport = "transport"
)

// PointCategories lists every point category in display order.
var PointCategories = []string{
	PointCategoryAcademic,
	PointCategoryFacility,
	PointCategoryFood,
	PointCategoryTransport,
}

func (p NavigationPoint) CategoryName() string { return p.Category }

func (p NavigationPoint) SearchFields() []string { return []string{p.Name, p.Description} }
