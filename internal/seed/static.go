package seed

import "github.com/erazemk/kampus/internal/model"

const pexels = "https://images.pexels.com/photos/"

// Static returns the built-in sample campus.
func Static() *Data {
	return &Data{
		EventList: []model.Event{
			{
				ID:              "1",
				Title:           "Tech Conference 2024",
				Description:     "Join us for the biggest tech conference of the year featuring industry leaders, workshops, and networking opportunities.",
				Date:            "2024-12-15",
				Time:            "09:00 AM",
				Location:        "Main Auditorium",
				Image:           pexels + "2608517/pexels-photo-2608517.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category:        model.EventCategoryAcademic,
				RegisteredCount: 245,
				MaxCapacity:     300,
			},
			{
				ID:              "2",
				Title:           "Cultural Festival",
				Description:     "Celebrate diversity with performances, food stalls, and cultural exhibitions from around the world.",
				Date:            "2024-12-20",
				Time:            "06:00 PM",
				Location:        "Campus Grounds",
				Image:           pexels + "1190297/pexels-photo-1190297.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category:        model.EventCategoryCultural,
				RegisteredCount: 180,
				MaxCapacity:     500,
				IsRegistered:    true,
			},
			{
				ID:              "3",
				Title:           "Sports Championship",
				Description:     "Annual inter-department sports championship featuring football, basketball, and track events.",
				Date:            "2024-12-25",
				Time:            "08:00 AM",
				Location:        "Sports Complex",
				Image:           pexels + "209969/pexels-photo-209969.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category:        model.EventCategorySports,
				RegisteredCount: 120,
				MaxCapacity:     200,
			},
			{
				ID:              "4",
				Title:           "AI Workshop Series",
				Description:     "Learn about artificial intelligence and machine learning in this hands-on workshop series.",
				Date:            "2024-12-18",
				Time:            "02:00 PM",
				Location:        "Computer Lab 1",
				Image:           pexels + "3861969/pexels-photo-3861969.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category:        model.EventCategoryWorkshop,
				RegisteredCount: 45,
				MaxCapacity:     50,
			},
		},
		ItemList: []model.LostFoundItem{
			{
				ID:           "1",
				Title:        "iPhone 13 Pro",
				Description:  "Black iPhone 13 Pro with a blue case. Lost near the library.",
				Image:        pexels + "788946/pexels-photo-788946.jpeg?auto=compress&cs=tinysrgb&w=400",
				Category:     model.ItemCategoryElectronics,
				Status:       model.ItemStatusLost,
				Location:     "Central Library",
				DateReported: "2024-12-10",
				ReportedBy:   "John Doe",
				ContactInfo:  "john.doe@university.edu",
			},
			{
				ID:           "2",
				Title:        "Red Backpack",
				Description:  "Red Nike backpack with laptop compartment. Contains textbooks.",
				Image:        pexels + "2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400",
				Category:     model.ItemCategoryAccessories,
				Status:       model.ItemStatusFound,
				Location:     "Student Center",
				DateReported: "2024-12-09",
				ReportedBy:   "Jane Smith",
				ContactInfo:  "jane.smith@university.edu",
			},
			{
				ID:           "3",
				Title:        "Calculus Textbook",
				Description:  "Stewart Calculus 8th Edition with yellow highlighter marks.",
				Image:        pexels + "159711/books-bookstore-book-reading-159711.jpeg?auto=compress&cs=tinysrgb&w=400",
				Category:     model.ItemCategoryBooks,
				Status:       model.ItemStatusFound,
				Location:     "Mathematics Building",
				DateReported: "2024-12-08",
				ReportedBy:   "Mike Johnson",
				ContactInfo:  "mike.johnson@university.edu",
			},
			{
				ID:           "4",
				Title:        "Blue Hoodie",
				Description:  "University branded blue hoodie, size M. Left in cafeteria.",
				Image:        pexels + "996329/pexels-photo-996329.jpeg?auto=compress&cs=tinysrgb&w=400",
				Category:     model.ItemCategoryClothing,
				Status:       model.ItemStatusLost,
				Location:     "Main Cafeteria",
				DateReported: "2024-12-07",
				ReportedBy:   "Sarah Wilson",
				ContactInfo:  "sarah.wilson@university.edu",
			},
		},
		MenuList: []model.CafeteriaItem{
			{ID: "1", Name: "Chicken Burger", Price: 8.99, Image: pexels + "1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=400", Category: model.MenuCategoryMain, Availability: true, Rating: 4.5},
			{ID: "2", Name: "Caesar Salad", Price: 6.99, Image: pexels + "1059905/pexels-photo-1059905.jpeg?auto=compress&cs=tinysrgb&w=400", Category: model.MenuCategoryMain, Availability: true, Rating: 4.2},
			{ID: "3", Name: "Chocolate Cake", Price: 4.99, Image: pexels + "291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=400", Category: model.MenuCategoryDesserts, Availability: true, Rating: 4.8},
			{ID: "4", Name: "Iced Coffee", Price: 3.99, Image: pexels + "302899/pexels-photo-302899.jpeg?auto=compress&cs=tinysrgb&w=400", Category: model.MenuCategoryBeverages, Availability: true, Rating: 4.3},
			{ID: "5", Name: "Pizza Slice", Price: 5.99, Image: pexels + "315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=400", Category: model.MenuCategoryMain, Availability: false, Rating: 4.1},
			{ID: "6", Name: "Fruit Smoothie", Price: 4.49, Image: pexels + "775032/pexels-photo-775032.jpeg?auto=compress&cs=tinysrgb&w=400", Category: model.MenuCategoryBeverages, Availability: true, Rating: 4.6},
		},
		QueueList: []model.QueueStatus{
			{CafeteriaID: "1", Name: "Main Cafeteria", CurrentQueue: 12, EstimatedWait: 8, Status: model.QueueMedium, LastUpdated: "2 minutes ago"},
			{CafeteriaID: "2", Name: "Food Court", CurrentQueue: 5, EstimatedWait: 3, Status: model.QueueLow, LastUpdated: "1 minute ago"},
			{CafeteriaID: "3", Name: "Coffee Shop", CurrentQueue: 18, EstimatedWait: 15, Status: model.QueueHigh, LastUpdated: "30 seconds ago"},
		},
		PointList: []model.NavigationPoint{
			{ID: "1", Name: "Central Library", Category: model.PointCategoryAcademic, Coordinates: model.Coordinates{Lat: 40.7128, Lng: -74.0060}, Description: "Main campus library with study rooms and computer labs"},
			{ID: "2", Name: "Student Center", Category: model.PointCategoryFacility, Coordinates: model.Coordinates{Lat: 40.7130, Lng: -74.0058}, Description: "Student services, bookstore, and meeting rooms"},
			{ID: "3", Name: "Main Cafeteria", Category: model.PointCategoryFood, Coordinates: model.Coordinates{Lat: 40.7125, Lng: -74.0062}, Description: "Primary dining facility with various food options"},
			{ID: "4", Name: "Sports Complex", Category: model.PointCategoryFacility, Coordinates: model.Coordinates{Lat: 40.7135, Lng: -74.0055}, Description: "Gymnasium, swimming pool, and outdoor courts"},
			{ID: "5", Name: "Bus Stop A", Category: model.PointCategoryTransport, Coordinates: model.Coordinates{Lat: 40.7120, Lng: -74.0065}, Description: "Main bus stop for city transportation"},
			{ID: "6", Name: "Computer Science Building", Category: model.PointCategoryAcademic, Coordinates: model.Coordinates{Lat: 40.7132, Lng: -74.0057}, Description: "CS department offices and computer labs"},
		},
	}
}
