package handler

import (
	"errors"
	"log"

	"mess_finder/constants"
	"mess_finder/database"
	"mess_finder/helper"
	"mess_finder/model"
	"mess_finder/utils"

	"github.com/gofiber/fiber/v2"
)

// LogAdminAction records a moderation action. Failures are logged and
// swallowed so auditing never blocks the action itself.
func LogAdminAction(admin model.TokenClaim, action, details string) {
	entry := model.AdminLog{
		AdminId:    admin.UserId,
		AdminEmail: admin.Email,
		Action:     action,
		Details:    details,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("could not write admin log: %v", err)
	}
}

func GetAdminLogs(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("role is not admin"))
	}

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.AdminLog{})

	var totalCount int64
	condition.Count(&totalCount)

	var logs model.AdminLogs
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Order("id DESC").Find(&logs)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       logs,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// GetAdminStats aggregates the dashboard counters: listings by state,
// queue depth and account counts.
func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("role is not admin"))
	}

	db := database.DB

	var totalSeats, availableSeats, fullSeats, pendingCount, bookingCount int64
	db.Model(&model.Seat{}).Count(&totalSeats)
	db.Model(&model.Seat{}).
		Where("status = ? AND vacant_seats > 0", constants.SEAT_STATUS_PUBLISHED).
		Count(&availableSeats)
	db.Model(&model.Seat{}).Where("status = ?", constants.SEAT_STATUS_FULL).Count(&fullSeats)
	db.Model(&model.PendingRequest{}).Count(&pendingCount)
	db.Model(&model.Booking{}).Count(&bookingCount)

	var userStats model.UserStats
	db.Model(&model.User{}).Count(&userStats.TotalUsers)
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_STUDENT).Count(&userStats.Students)
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_OWNER).Count(&userStats.Owners)
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_ADMIN).Count(&userStats.Admins)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalProperties": totalSeats,
		"available":       availableSeats,
		"fullyBooked":     fullSeats,
		"pendingRequests": pendingCount,
		"totalBookings":   bookingCount,
		"users":           userStats,
	})
}
