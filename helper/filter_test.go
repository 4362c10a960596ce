package helper

import (
	"testing"

	"mess_finder/constants"
	"mess_finder/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedSeat() model.Seat {
	return model.Seat{
		Title:         "Modern Mess - Shaheb Bazar",
		Type:          "Mess",
		Location:      "Shaheb Bazar, Rajshahi",
		Price:         4500,
		Description:   "Clean and hygienic mess with home-cooked food.",
		Amenities:     []string{"WiFi", "AC", "Laundry"},
		Gender:        "Boys",
		OccupancyType: "Double",
		TotalSeats:    10,
		VacantSeats:   4,
		Status:        constants.SEAT_STATUS_PUBLISHED,
	}
}

func TestMatchesPriceRange_Brackets(t *testing.T) {
	cases := []struct {
		price int
		label string
		want  bool
	}{
		{3999, constants.PRICE_UNDER_4000, true},
		{4000, constants.PRICE_UNDER_4000, false},
		{4000, constants.PRICE_4000_5000, true},
		{4999, constants.PRICE_4000_5000, true},
		{5000, constants.PRICE_4000_5000, false},
		{5000, constants.PRICE_5000_6000, true},
		{5999, constants.PRICE_5000_6000, true},
		{6000, constants.PRICE_5000_6000, false},
		{6000, constants.PRICE_ABOVE_6000, true},
		{12000, constants.PRICE_ABOVE_6000, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchesPriceRange(tc.price, tc.label),
			"price %d against %q", tc.price, tc.label)
	}
}

// Every price must satisfy exactly one bracket; a boundary value matching
// two adjacent brackets would double-count listings.
func TestMatchesPriceRange_ExactlyOneBracket(t *testing.T) {
	labels := []string{
		constants.PRICE_UNDER_4000,
		constants.PRICE_4000_5000,
		constants.PRICE_5000_6000,
		constants.PRICE_ABOVE_6000,
	}
	for _, price := range []int{0, 1, 3999, 4000, 4001, 4999, 5000, 5999, 6000, 6001, 20000} {
		matches := 0
		for _, label := range labels {
			if MatchesPriceRange(price, label) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "price %d matched %d brackets", price, matches)
	}
}

func TestMatchesPriceRange_EmptyLabelIsNoOp(t *testing.T) {
	assert.True(t, MatchesPriceRange(100, ""))
	assert.True(t, MatchesPriceRange(100, "Price Range"))
}

func TestMatchesFilter_FreeTextIsCaseInsensitive(t *testing.T) {
	seat := publishedSeat()

	assert.True(t, MatchesFilter(seat, model.FilterSeatInput{Search: "wifi"}))
	assert.True(t, MatchesFilter(seat, model.FilterSeatInput{Search: "SHAHEB"}))
	assert.True(t, MatchesFilter(seat, model.FilterSeatInput{Search: "home-cooked"}))
	assert.False(t, MatchesFilter(seat, model.FilterSeatInput{Search: "elevator"}))
}

func TestMatchesFilter_IndependentCriteria(t *testing.T) {
	seat := publishedSeat()

	assert.True(t, MatchesFilter(seat, model.FilterSeatInput{}), "empty criteria match everything")
	assert.True(t, MatchesFilter(seat, model.FilterSeatInput{Type: "Mess", Gender: "Boys"}))
	assert.False(t, MatchesFilter(seat, model.FilterSeatInput{Type: "House"}))
	assert.False(t, MatchesFilter(seat, model.FilterSeatInput{Gender: "Girls"}))
	assert.False(t, MatchesFilter(seat, model.FilterSeatInput{Occupancy: "Single"}))
	assert.True(t, MatchesFilter(seat, model.FilterSeatInput{Location: "Shaheb Bazar"}))
	assert.False(t, MatchesFilter(seat, model.FilterSeatInput{Location: "Kazla"}))
	assert.True(t, MatchesFilter(seat, model.FilterSeatInput{PriceRange: constants.PRICE_4000_5000}))
}

func TestIsPubliclyVisible(t *testing.T) {
	seat := publishedSeat()
	assert.True(t, IsPubliclyVisible(seat))

	booked := publishedSeat()
	booked.VacantSeats = 0
	booked.Status = constants.SEAT_STATUS_FULL
	assert.False(t, IsPubliclyVisible(booked))

	zeroVacancy := publishedSeat()
	zeroVacancy.VacantSeats = 0
	assert.False(t, IsPubliclyVisible(zeroVacancy), "no vacancy hides the listing even if status lags")
}

func TestFilterSeats_DefaultViewExcludesUnbookable(t *testing.T) {
	visible := publishedSeat()

	full := publishedSeat()
	full.Title = "Royal Boarding House"
	full.VacantSeats = 0
	full.Status = constants.SEAT_STATUS_FULL

	seats := []model.Seat{visible, full}

	result := FilterSeats(seats, model.FilterSeatInput{})
	require.Len(t, result, 1)
	assert.Equal(t, visible.Title, result[0].Title)
}

func TestFilterSeats_CombinedCriteria(t *testing.T) {
	mess := publishedSeat()

	house := publishedSeat()
	house.Title = "Student House - University Area"
	house.Type = "House"
	house.Gender = "Girls"
	house.Location = "University Area, Rajshahi"
	house.Price = 6000
	house.Amenities = []string{"Furnished", "Study Room"}

	seats := []model.Seat{mess, house}

	result := FilterSeats(seats, model.FilterSeatInput{
		Type:       "House",
		PriceRange: constants.PRICE_ABOVE_6000,
	})
	require.Len(t, result, 1)
	assert.Equal(t, house.Title, result[0].Title)

	result = FilterSeats(seats, model.FilterSeatInput{Search: "wifi"})
	require.Len(t, result, 1)
	assert.Equal(t, mess.Title, result[0].Title)
}
