package validate

import (
	"fmt"

	"mess_finder/constants"
	"mess_finder/model"
	"mess_finder/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitSeat validates a new listing submission. Vacancy is clamped to the
// declared capacity at this boundary so 0 <= vacantSeats <= totalSeats
// holds for every record that enters the pending queue.
func SubmitSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSeatInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Title == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Title is required", nil, "title")
		}
		if !utils.IsValidValueOfConstant(input.Type, constants.SeatTypes) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Type must be one of Mess, House, PG or Shared", nil, "type")
		}
		if !utils.IsValidValueOfConstant(input.Gender, constants.Genders) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gender must be Boys or Girls", nil, "gender")
		}
		if input.Price <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Price must be a positive amount", nil, "price")
		}
		if input.Location == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Location is required", nil, "location")
		}
		if input.Contact == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Contact is required", nil, "contact")
		}
		if input.OccupancyType != "" && !utils.IsValidValueOfConstant(input.OccupancyType, constants.OccupancyTypes) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Occupancy must be Single, Double, Triple or Quad", nil, "occupancyType")
		}
		if !utils.AllInVocabulary(input.Amenities, constants.Amenities) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unknown amenity selected", nil, "amenities")
		}
		if len(input.Images) > constants.MaxSeatImages {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				fmt.Sprintf("At most %d images are allowed", constants.MaxSeatImages), nil, "images")
		}
		if input.TotalSeats < 0 || input.VacantSeats < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Seat counts cannot be negative", nil, "totalSeats")
		}
		if input.TotalSeats == 0 {
			// A listing with no declared capacity defaults to one seat.
			input.TotalSeats = 1
			input.VacantSeats = 1
		}
		if input.VacantSeats > input.TotalSeats {
			input.VacantSeats = input.TotalSeats
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("SubmitSeat", input)

		return c.Next()
	}
}

// BookSeat parses the requested seat count, defaulting to one.
func BookSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookSeatInput

		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Invalid input %s", err.Error()),
				})
			}
		}

		if input.Seats == 0 {
			input.Seats = 1
		}
		if input.Seats < 1 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Seat count must be at least 1", nil, "seats")
		}

		c.Locals("BookSeat", input)

		return c.Next()
	}
}
