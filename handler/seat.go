package handler

import (
	"errors"
	"fmt"
	"time"

	"mess_finder/config"
	"mess_finder/constants"
	"mess_finder/database"
	"mess_finder/helper"
	"mess_finder/model"
	"mess_finder/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSeats serves the public grid. Visibility (published, vacant) is
// enforced in the query; the optional criteria are evaluated with the pure
// predicates so the price brackets and free-text search behave exactly as
// specified.
func GetSeats(c *fiber.Ctx) error {
	filterInput := new(model.FilterSeatInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var seats model.Seats
	if err := db.Where("status = ? AND vacant_seats > 0", constants.SEAT_STATUS_PUBLISHED).
		Order("id DESC").Find(&seats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	filtered := helper.FilterSeats(seats, *filterInput)

	return c.JSON(fiber.Map{
		"status": "success",
		"count":  len(filtered),
		"data":   filtered,
	})
}

func SearchSeats(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.ErrorResponse(c, 400, "Missing search keyword", nil)
	}

	var seats model.Seats
	err := database.DB.
		Where("status = ? AND vacant_seats > 0", constants.SEAT_STATUS_PUBLISHED).
		Where("title ILIKE ? OR location ILIKE ? OR description ILIKE ?",
			"%"+query+"%", "%"+query+"%", "%"+query+"%").
		Limit(20).
		Find(&seats).Error

	if err != nil {
		return utils.ErrorResponse(c, 500, "Search failed", err)
	}

	return utils.SuccessResponse(c, 200, seats)
}

func GetSeatDetail(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var seat model.Seat
	if err := database.DB.Where("slug = ?", slugParam).First(&seat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SEAT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

func GetSeatById(c *fiber.Ctx) error {
	seatId := c.Locals("inputId").(int)

	var seat model.Seat
	if err := database.DB.First(&seat, seatId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SEAT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

// BookSeat takes the requested number of seats off a listing. The decrement
// is a guarded UPDATE inside the transaction, so two racing bookings can
// never drive the vacancy negative.
func BookSeat(c *fiber.Ctx) error {
	db := database.DB
	seatId := c.Locals("inputId").(int)
	input, ok := c.Locals("BookSeat").(model.BookSeatInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	user, loggedIn := helper.SessionUser(c)
	if !loggedIn {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in to book a seat", nil)
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var seat model.Seat
	if err := tx.First(&seat, seatId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SEAT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if seat.Status != constants.SEAT_STATUS_PUBLISHED {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_FULLY_BOOKED, errors.New("listing not bookable"))
	}

	updated, err := helper.DecrementVacantSeats(tx, seat.ID, input.Seats)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, helper.ErrNotEnoughSeats) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_FULLY_BOOKED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking := model.Booking{
		PublicCode: "BKG-" + uuid.New().String()[:8],
		SeatId:     updated.ID,
		UserId:     claim.UserId,
		SeatsTaken: input.Seats,
		BookedAt:   time.Now(),
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not record booking", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	BroadcastSeatChange(*updated)
	utils.SendBookingConfirmationEmail(user.Email, utils.BookingConfirmationData{
		BookingCode: booking.PublicCode,
		SeatTitle:   updated.Title,
		Location:    updated.Location,
		SeatsTaken:  booking.SeatsTaken,
		Price:       updated.Price,
		Contact:     updated.Contact,
		DetailLink:  fmt.Sprintf("%s/seats/%s", config.Config("APP_BASE_URL"), updated.Slug),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking": booking,
		"seat":    updated,
	})
}

// GetMySeats returns the listings an owner has published.
func GetMySeats(c *fiber.Ctx) error {
	claim, _, isOwner, _ := helper.GetInfoUserFromToken(c)
	if !isOwner {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("role is not owner"))
	}

	var seats model.Seats
	if err := database.DB.Where("owner_id = ?", claim.UserId).
		Order("id DESC").Find(&seats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, seats)
}

// GetAllSeats lists every listing, including full ones, for the admin
// table.
func GetAllSeats(c *fiber.Ctx) error {
	filterInput := new(model.FilterSeatInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Seat{})

	var totalCount int64
	condition.Count(&totalCount)

	var seats model.Seats
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Order("id DESC").Find(&seats)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       seats,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// DeleteSeats removes listings from the public store (admin action).
func DeleteSeats(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	claim, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("role is not admin"))
	}

	if err := db.Delete(&model.Seat{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	LogAdminAction(claim, constants.ADMIN_ACTION_DELETE_SEAT, fmt.Sprintf("deleted listings %v", input.IDs))

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
