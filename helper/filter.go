package helper

import (
	"strings"

	"mess_finder/constants"
	"mess_finder/model"
)

// IsPubliclyVisible reports whether a listing belongs in the default grid:
// published and with at least one vacant seat.
func IsPubliclyVisible(seat model.Seat) bool {
	return seat.Status == constants.SEAT_STATUS_PUBLISHED && seat.VacantSeats > 0
}

// MatchesPriceRange checks a price against one of the four fixed brackets.
// Brackets are half-open so every price belongs to exactly one:
// <4000, [4000,5000), [5000,6000), >=6000. An unknown or empty label
// matches everything.
func MatchesPriceRange(price int, label string) bool {
	switch label {
	case constants.PRICE_UNDER_4000:
		return price < 4000
	case constants.PRICE_4000_5000:
		return price >= 4000 && price < 5000
	case constants.PRICE_5000_6000:
		return price >= 5000 && price < 6000
	case constants.PRICE_ABOVE_6000:
		return price >= 6000
	default:
		return true
	}
}

// SearchableText concatenates every descriptive dimension of a listing for
// free-text matching.
func SearchableText(seat model.Seat) string {
	parts := []string{
		seat.Title,
		seat.Location,
		seat.Description,
	}
	parts = append(parts, seat.Amenities...)
	parts = append(parts, seat.Type, seat.OccupancyType, seat.Gender)
	return strings.ToLower(strings.Join(parts, " "))
}

// MatchesFilter evaluates every optional criterion against one listing.
// Empty criteria are no-ops for their dimension.
func MatchesFilter(seat model.Seat, filter model.FilterSeatInput) bool {
	if filter.Type != "" && seat.Type != filter.Type {
		return false
	}
	if filter.Gender != "" && seat.Gender != filter.Gender {
		return false
	}
	if filter.Occupancy != "" && seat.OccupancyType != filter.Occupancy {
		return false
	}
	if filter.Location != "" && !strings.Contains(seat.Location, filter.Location) {
		return false
	}
	if filter.PriceRange != "" && !MatchesPriceRange(seat.Price, filter.PriceRange) {
		return false
	}
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		if !strings.Contains(SearchableText(seat), term) {
			return false
		}
	}
	return true
}

// FilterSeats returns the listings visible in the public grid for the
// given criteria.
func FilterSeats(seats []model.Seat, filter model.FilterSeatInput) []model.Seat {
	result := make([]model.Seat, 0, len(seats))
	for _, seat := range seats {
		if !IsPubliclyVisible(seat) {
			continue
		}
		if MatchesFilter(seat, filter) {
			result = append(result, seat)
		}
	}
	return result
}
