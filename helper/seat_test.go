package helper

import (
	"testing"

	"mess_finder/constants"

	"github.com/stretchr/testify/assert"
)

func TestStatusForVacancy(t *testing.T) {
	assert.Equal(t, constants.SEAT_STATUS_PUBLISHED, StatusForVacancy(1))
	assert.Equal(t, constants.SEAT_STATUS_PUBLISHED, StatusForVacancy(10))
	assert.Equal(t, constants.SEAT_STATUS_FULL, StatusForVacancy(0))
	assert.Equal(t, constants.SEAT_STATUS_FULL, StatusForVacancy(-1))
}

func TestClampVacancy(t *testing.T) {
	assert.Equal(t, 3, ClampVacancy(3, 10))
	assert.Equal(t, 10, ClampVacancy(10, 10))
	assert.Equal(t, 10, ClampVacancy(15, 10), "vacancy cannot exceed capacity")
	assert.Equal(t, 0, ClampVacancy(-2, 10))
	assert.Equal(t, 0, ClampVacancy(0, 0))
}
