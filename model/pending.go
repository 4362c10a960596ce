package model

// PendingRequest is a listing awaiting admin review. It reaches a terminal
// state through exactly one of approve (promoted to Seat, then deleted) or
// reject (deleted).
type PendingRequest struct {
	DTO
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

	TotalSeats  int    `gorm:"not null;default:0" json:"totalSeats"`
	VacantSeats int    `gorm:"not null;default:0" json:"vacantSeats"`
	Status      string `gorm:"not null;default:pending" json:"status"`

	// Flagged by the stale-pending sweep once the request has sat in the
	// queue past the review SLA.
	Stale bool `gorm:"default:false" json:"stale"`

	OwnerId uint `gorm:"index" json:"ownerId"`
	OwnerInfo

	SubmittedBy User `gorm:"foreignKey:OwnerId" json:"submittedBy"`
}

type PendingRequests []PendingRequest
