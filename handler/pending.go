package handler

import (
	"errors"
	"fmt"

	"mess_finder/constants"
	"mess_finder/database"
	"mess_finder/helper"
	"mess_finder/model"
	"mess_finder/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// SubmitSeat files a new listing into the pending queue for admin review.
func SubmitSeat(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("SubmitSeat").(model.CreateSeatInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil, "general")
	}

	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in to submit a listing", nil)
	}

	request := new(model.PendingRequest)
	copier.Copy(&request, &input)
	request.Status = constants.SEAT_STATUS_PENDING
	request.OwnerId = claim.UserId
	request.MapLink = utils.StringPtr(input.MapLink)
	request.VacantSeats = helper.ClampVacancy(input.VacantSeats, input.TotalSeats)
	request.OwnerInfo = model.OwnerInfo{
		OwnerName:     input.OwnerName,
		OwnerNid:      input.OwnerNid,
		HoldingNumber: input.HoldingNumber,
	}

	if err := db.Create(&request).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err, "general")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, request)
}

// GetPendingRequests lists the admin review queue, oldest first.
func GetPendingRequests(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("role is not admin"))
	}

	var requests model.PendingRequests
	if err := database.DB.Preload("SubmittedBy").
		Order("id ASC").Find(&requests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, requests)
}

// GetMyPendingRequests shows a user their own submissions still in review.
func GetMyPendingRequests(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	var requests model.PendingRequests
	if err := database.DB.Where("owner_id = ?", claim.UserId).
		Order("id DESC").Find(&requests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, requests)
}

// ApproveRequest promotes a pending request into the public listing store
// and removes it from the queue. Approve is terminal: the request id is
// gone afterwards, and exactly one published listing exists in its place.
func ApproveRequest(c *fiber.Ctx) error {
	db := database.DB
	requestId := c.Locals("inputId").(int)

	claim, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("role is not admin"))
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var request model.PendingRequest
	if err := tx.First(&request, requestId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.REQUEST_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	seat := new(model.Seat)
	copier.Copy(&seat, &request)
	seat.ID = 0
	seat.Slug = helper.GenerateUniqueSeatSlug(tx, request.Title)
	seat.VacantSeats = helper.ClampVacancy(request.VacantSeats, request.TotalSeats)
	seat.Status = helper.StatusForVacancy(seat.VacantSeats)

	if err := tx.Create(&seat).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	if err := tx.Delete(&request).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	LogAdminAction(claim, constants.ADMIN_ACTION_APPROVE,
		fmt.Sprintf("approved request %d as listing %d (%s)", request.ID, seat.ID, seat.Title))
	BroadcastSeatChange(*seat)

	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

// RejectRequest removes a pending request without publishing anything.
// Like approve, it is terminal for the request id.
func RejectRequest(c *fiber.Ctx) error {
	db := database.DB
	requestId := c.Locals("inputId").(int)

	claim, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("role is not admin"))
	}

	var request model.PendingRequest
	if err := db.First(&request, requestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.REQUEST_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	LogAdminAction(claim, constants.ADMIN_ACTION_REJECT,
		fmt.Sprintf("rejected request %d (%s)", request.ID, request.Title))

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"rejected": request.ID})
}
