package model

import "time"

type Booking struct {
	DTO
	PublicCode string    `gorm:"uniqueIndex;not null" json:"publicCode"`
	SeatId     uint      `gorm:"not null;index" json:"seatId"`
	UserId     uint      `gorm:"not null;index" json:"userId"`
	SeatsTaken int       `gorm:"not null;default:1" json:"seatsTaken"`
	BookedAt   time.Time `gorm:"not null" json:"bookedAt"`

	Seat Seat `gorm:"foreignKey:SeatId" json:"seat"`
	User User `gorm:"foreignKey:UserId" json:"-"`
}

type Bookings []Booking
