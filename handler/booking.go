package handler

import (
	"errors"
	"fmt"

	"mess_finder/config"
	"mess_finder/constants"
	"mess_finder/database"
	"mess_finder/helper"
	"mess_finder/model"
	"mess_finder/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMyBookings(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	var bookings model.Bookings
	if err := database.DB.Preload("Seat").
		Where("user_id = ?", claim.UserId).
		Order("id DESC").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

// GetBookingQR renders the booking reference as a PNG QR code the student
// can show to the property owner.
func GetBookingQR(c *fiber.Ctx) error {
	code := c.Params("code")

	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	var booking model.Booking
	if err := database.DB.Where("public_code = ? AND user_id = ?", code, claim.UserId).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	content := fmt.Sprintf("%s/bookings/%s", config.Config("APP_BASE_URL"), booking.PublicCode)
	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not generate QR code", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
