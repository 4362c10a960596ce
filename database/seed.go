package database

import (
	"log"

	"mess_finder/config"
	"mess_finder/constants"
	"mess_finder/model"
	"mess_finder/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData is idempotent: every record is created with FirstOrCreate keyed
// on email, so repeated startups never duplicate accounts. Demo accounts
// are only created when SEED_DEMO=true.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admins := []model.User{
		{
			Name:          "Administration",
			Email:         "admin@demo.com",
			Phone:         "+880 1700-000003",
			Password:      hashPassword,
			Role:          constants.ROLE_ADMIN,
			EmailVerified: true,
			IsActive:      true,
		},
	}

	for _, admin := range admins {
		if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
			log.Println("failed to seed admin:", admin.Email, "error:", err)
		}
	}

	if !config.ConfigBool("SEED_DEMO") {
		return
	}

	demoUsers := []model.User{
		{
			Name:          "Demo Student",
			Email:         "student@demo.com",
			Phone:         "+880 1700-000001",
			Password:      hashPassword,
			Role:          constants.ROLE_STUDENT,
			EmailVerified: true,
			IsActive:      true,
		},
		{
			Name:          "Demo Owner",
			Email:         "owner@demo.com",
			Phone:         "+880 1700-000002",
			Password:      hashPassword,
			Role:          constants.ROLE_OWNER,
			NidNumber:     utils.StringPtr("1234567890123"),
			Address:       utils.StringPtr("123 Demo Street, Rajshahi"),
			EmailVerified: true,
			IsActive:      true,
		},
	}

	for _, user := range demoUsers {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed demo user:", user.Email, "error:", err)
		}
	}

	var owner model.User
	if err := db.Where(model.User{Email: "owner@demo.com"}).First(&owner).Error; err != nil {
		log.Println("demo owner missing, skipping demo listings:", err)
		return
	}

	demoSeats := []model.Seat{
		{
			Slug:          "modern-mess-shaheb-bazar",
			Title:         "Modern Mess - Shaheb Bazar",
			Type:          "Mess",
			Location:      "Shaheb Bazar, Rajshahi",
			Price:         4500,
			Description:   "Clean and hygienic mess with home-cooked food. 3 meals included.",
			Amenities:     []string{"WiFi", "AC", "Laundry", "24/7 Security"},
			Images:        []string{"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=400"},
			Contact:       "+880 1711-123456",
			Gender:        "Boys",
			OccupancyType: "Double",
			Rating:        4.5,
			TotalSeats:    12,
			VacantSeats:   5,
			Status:        constants.SEAT_STATUS_PUBLISHED,
			OwnerId:       owner.ID,
		},
		{
			Slug:          "student-house-university-area",
			Title:         "Student House - University Area",
			Type:          "House",
			Location:      "University Area, Rajshahi",
			Price:         6000,
			Description:   "Furnished single room near Rajshahi University. Perfect for students.",
			Amenities:     []string{"WiFi", "Furnished", "Kitchen Access", "Study Room"},
			Images:        []string{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=400"},
			Contact:       "+880 1811-234567",
			Gender:        "Girls",
			OccupancyType: "Single",
			Rating:        4.2,
			TotalSeats:    6,
			VacantSeats:   2,
			Status:        constants.SEAT_STATUS_PUBLISHED,
			OwnerId:       owner.ID,
		},
		{
			Slug:          "green-valley-mess",
			Title:         "Green Valley Mess",
			Type:          "Mess",
			Location:      "Kazla, Rajshahi",
			Price:         3800,
			Description:   "Affordable mess with quality food and friendly environment.",
			Amenities:     []string{"WiFi", "Common Room", "Library", "Medical Facility"},
			Images:        []string{"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400"},
			Contact:       "+880 1911-345678",
			Gender:        "Boys",
			OccupancyType: "Triple",
			Rating:        4.0,
			TotalSeats:    18,
			VacantSeats:   9,
			Status:        constants.SEAT_STATUS_PUBLISHED,
			OwnerId:       owner.ID,
		},
		{
			Slug:          "royal-boarding-house",
			Title:         "Royal Boarding House",
			Type:          "House",
			Location:      "Court Para, Rajshahi",
			Price:         5500,
			Description:   "Premium boarding house with excellent facilities.",
			Amenities:     []string{"AC", "WiFi", "Generator", "24/7 Security"},
			Images:        []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400"},
			Contact:       "+880 1611-456789",
			Gender:        "Girls",
			OccupancyType: "Quad",
			Rating:        4.7,
			TotalSeats:    8,
			VacantSeats:   0,
			Status:        constants.SEAT_STATUS_FULL,
			OwnerId:       owner.ID,
		},
	}

	for _, seat := range demoSeats {
		if err := db.Where(model.Seat{Slug: seat.Slug}).FirstOrCreate(&seat).Error; err != nil {
			log.Println("failed to seed listing:", seat.Title, "error:", err)
		}
	}
}
