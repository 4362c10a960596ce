package model

// Seat is a published listing. A listing is publicly visible only while
// Status is "published" and VacantSeats > 0.
type Seat struct {
	DTO
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	Title    string `gorm:"not null" json:"title"`
	Type     string `gorm:"not null" json:"type"`
	Location string `gorm:"not null" json:"location"`
	Price    int    `gorm:"not null" json:"price"`

	Description   string   `json:"description"`
	Amenities     []string `gorm:"serializer:json" json:"amenities"`
	Images        []string `gorm:"serializer:json" json:"images"`
	Contact       string   `gorm:"not null" json:"contact"`
	Gender        string   `json:"gender"`
	OccupancyType string   `json:"occupancyType"`
	MapLink       *string  `json:"mapLink,omitempty"`
	Rating        float64  `gorm:"default:0" json:"rating"`

	TotalSeats  int    `gorm:"not null;default:0" json:"totalSeats"`
	VacantSeats int    `gorm:"not null;default:0" json:"vacantSeats"`
	Status      string `gorm:"not null" json:"status"`

	OwnerId uint `gorm:"index" json:"ownerId"`
	OwnerInfo
}

// OwnerInfo is submitted with the listing and used during admin review.
type OwnerInfo struct {
	OwnerName     string `json:"ownerName"`
	OwnerNid      string `json:"ownerNid"`
	HoldingNumber string `json:"holdingNumber"`
}

type Seats []Seat

type CreateSeatInput struct {
	Title         string   `validate:"required" json:"title"`
	Type          string   `validate:"required" json:"type"`
	Gender        string   `validate:"required" json:"gender"`
	Price         int      `validate:"required,gt=0" json:"price"`
	Location      string   `validate:"required" json:"location"`
	Contact       string   `validate:"required" json:"contact"`
	Description   string   `json:"description"`
	OccupancyType string   `json:"occupancyType"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	MapLink       string   `json:"mapLink"`
	TotalSeats    int      `validate:"gte=0" json:"totalSeats"`
	VacantSeats   int      `validate:"gte=0" json:"vacantSeats"`
	OwnerName     string   `json:"ownerName"`
	OwnerNid      string   `json:"ownerNid"`
	HoldingNumber string   `json:"holdingNumber"`
}

// FilterSeatInput carries the optional public grid criteria. Empty fields
// are no-ops.
type FilterSeatInput struct {
	Pagination
	Type       string `query:"type" json:"type"`
	Gender     string `query:"gender" json:"gender"`
	Occupancy  string `query:"occupancy" json:"occupancy"`
	Location   string `query:"location" json:"location"`
	PriceRange string `query:"priceRange" json:"priceRange"`
	Search     string `query:"search" json:"search"`
}

type BookSeatInput struct {
	Seats int `json:"seats"`
}
