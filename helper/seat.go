package helper

import (
	"errors"
	"fmt"

	"mess_finder/constants"
	"mess_finder/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var ErrNotEnoughSeats = errors.New("not enough vacant seats")

func GenerateUniqueSeatSlug(tx *gorm.DB, title string) string {
	base := slug.Make(title)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Seat{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

// StatusForVacancy derives the published-listing status from its vacancy.
func StatusForVacancy(vacantSeats int) string {
	if vacantSeats <= 0 {
		return constants.SEAT_STATUS_FULL
	}
	return constants.SEAT_STATUS_PUBLISHED
}

// ClampVacancy keeps 0 <= vacant <= total at the input boundary.
func ClampVacancy(vacantSeats, totalSeats int) int {
	if vacantSeats > totalSeats {
		return totalSeats
	}
	if vacantSeats < 0 {
		return 0
	}
	return vacantSeats
}

// DecrementVacantSeats takes count seats off a listing with a guarded
// UPDATE so two concurrent bookings can never drive the counter negative.
// Returns ErrNotEnoughSeats when the remaining vacancy is insufficient.
func DecrementVacantSeats(tx *gorm.DB, seatId uint, count int) (*model.Seat, error) {
	result := tx.Model(&model.Seat{}).
		Where("id = ? AND vacant_seats >= ?", seatId, count).
		UpdateColumn("vacant_seats", gorm.Expr("vacant_seats - ?", count))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotEnoughSeats
	}

	var seat model.Seat
	if err := tx.First(&seat, seatId).Error; err != nil {
		return nil, err
	}

	if status := StatusForVacancy(seat.VacantSeats); status != seat.Status {
		seat.Status = status
		if err := tx.Model(&model.Seat{}).Where("id = ?", seatId).
			UpdateColumn("status", status).Error; err != nil {
			return nil, err
		}
	}

	return &seat, nil
}
