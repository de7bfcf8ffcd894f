package store

import (
	"time"

	"quicklink/models"
)

// Seed is the initial contents of every collection, supplied once at store
// construction. The store copies it and treats it as plain data.
type Seed struct {
	Services  []models.Service
	Products  []models.Product
	FoodItems []models.FoodItem
	Requests  []models.Request
	Employees []models.Employee
}

// DefaultSeed returns the QuickLink launch catalog: nine services, eight
// products, six food items, two example requests and four employees.
func DefaultSeed() Seed {
	now := time.Now()
	return Seed{
		Services: []models.Service{
			{ID: "1", Name: "Taxi Rides", Icon: "🚖", Description: "Safe and reliable transportation"},
			{ID: "2", Name: "Grocery Shopping & Delivery", Icon: "🛒", Description: "Fresh groceries delivered to your door"},
			{ID: "3", Name: "Laundry & Dry-Cleaning", Icon: "👔", Description: "Professional cleaning services"},
			{ID: "4", Name: "Gift & Parcel Delivery", Icon: "📦", Description: "Same-day delivery service"},
			{ID: "5", Name: "Utility & Bill Payments", Icon: "💳", Description: "Pay your bills hassle-free"},
			{ID: "6", Name: "Prescription Runs", Icon: "💊", Description: "Medicine pickup and delivery"},
			{ID: "7", Name: "School & Office Errands", Icon: "🎒", Description: "Document collection and delivery"},
			{ID: "8", Name: "Airport Pickups & Drop-offs", Icon: "✈️", Description: "Reliable airport transfers"},
			{ID: "9", Name: "Senior Support & Pet Care", Icon: "🐕", Description: "Care services for seniors and pets"},
		},
		Products: []models.Product{
			{ID: "1", Name: "iPhone 15 Pro", Price: 120000, Category: "Phones", Image: "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg", Stock: 15, Featured: true},
			{ID: "2", Name: "Samsung Galaxy S24", Price: 95000, Category: "Phones", Image: "https://images.pexels.com/photos/1092644/pexels-photo-1092644.jpeg", Stock: 20},
			{ID: "3", Name: "MacBook Pro M3", Price: 185000, Category: "Computers", Image: "https://images.pexels.com/photos/18105/pexels-photo.jpg", Stock: 8, Featured: true},
			{ID: "4", Name: "Dell XPS 13", Price: 135000, Category: "Computers", Image: "https://images.pexels.com/photos/1229861/pexels-photo-1229861.jpeg", Stock: 12},
			{ID: "5", Name: "LG Double Door Fridge", Price: 85000, Category: "Fridges", Image: "https://images.pexels.com/photos/2343468/pexels-photo-2343468.jpeg", Stock: 6},
			{ID: "6", Name: "Samsung Side-by-Side Fridge", Price: 125000, Category: "Fridges", Image: "https://images.pexels.com/photos/2343468/pexels-photo-2343468.jpeg", Stock: 4, Featured: true},
			{ID: "7", Name: "Wireless Earbuds", Price: 8500, Category: "Accessories", Image: "https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg", Stock: 50},
			{ID: "8", Name: "Gaming Mouse", Price: 3500, Category: "Accessories", Image: "https://images.pexels.com/photos/2115217/pexels-photo-2115217.jpeg", Stock: 30},
		},
		FoodItems: []models.FoodItem{
			{ID: "1", Name: "Chicken Burger", Price: 650, Category: "Fast Food", Image: "https://images.pexels.com/photos/1199957/pexels-photo-1199957.jpeg", Available: true},
			{ID: "2", Name: "Margherita Pizza", Price: 1200, Category: "Fast Food", Image: "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg", Available: true},
			{ID: "3", Name: "French Fries", Price: 350, Category: "Fast Food", Image: "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg", Available: true},
			{ID: "4", Name: "Coca Cola", Price: 150, Category: "Drinks", Image: "https://images.pexels.com/photos/50593/coca-cola-cold-drink-soft-drink-coke-50593.jpeg", Available: true},
			{ID: "5", Name: "Coffee", Price: 200, Category: "Drinks", Image: "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg", Available: true},
			{ID: "6", Name: "Chocolate Cookies", Price: 250, Category: "Snacks", Image: "https://images.pexels.com/photos/230325/pexels-photo-230325.jpeg", Available: true},
		},
		Requests: []models.Request{
			{
				ID:               "ER-2025-001",
				Kind:             models.RequestKindService,
				Title:            "Taxi Ride to Airport",
				Description:      "Need pickup from Westlands to JKIA",
				Status:           models.RequestStatusInProgress,
				CustomerName:     "John Doe",
				CustomerPhone:    "0712345678",
				CustomerEmail:    "john@email.com",
				PickupLocation:   "Westlands",
				DropoffLocation:  "JKIA",
				DatePreference:   "2025-01-20",
				TimePreference:   "08:00",
				AssignedEmployee: "James Driver",
				CreatedAt:        now,
				UpdatedAt:        now,
				PaymentStatus:    models.PaymentStatusPaid,
			},
			{
				ID:              "ER-2025-002",
				Kind:            models.RequestKindProduct,
				Title:           "iPhone 15 Pro Order",
				Description:     "1x iPhone 15 Pro - Space Black",
				Status:          models.RequestStatusPending,
				CustomerName:    "Jane Smith",
				CustomerPhone:   "0723456789",
				CustomerEmail:   "jane@email.com",
				DropoffLocation: "Karen",
				DatePreference:  "2025-01-21",
				TimePreference:  "14:00",
				CreatedAt:       now,
				UpdatedAt:       now,
				PaymentStatus:   models.PaymentStatusPending,
			},
		},
		Employees: []models.Employee{
			{ID: "1", Name: "James Driver", Email: "james@quicklink.com", Phone: "0701234567", Role: models.EmployeeRoleDriver, Status: models.EmployeeStatusActive, CompletedJobs: 45, Rating: 4.8},
			{ID: "2", Name: "Mary Agent", Email: "mary@quicklink.com", Phone: "0712345678", Role: models.EmployeeRoleDispatcher, Status: models.EmployeeStatusActive, CompletedJobs: 120, Rating: 4.9},
			{ID: "3", Name: "Peter Rider", Email: "peter@quicklink.com", Phone: "0723456789", Role: models.EmployeeRoleRider, Status: models.EmployeeStatusActive, CompletedJobs: 78, Rating: 4.7},
			{ID: "4", Name: "Sarah Provider", Email: "sarah@quicklink.com", Phone: "0734567890", Role: models.EmployeeRoleServiceProvider, Status: models.EmployeeStatusActive, CompletedJobs: 32, Rating: 4.6},
		},
	}
}
