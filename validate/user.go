package validate

import (
	"fmt"
	"regexp"

	"mess_finder/constants"
	"mess_finder/model"
	"mess_finder/utils"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	const emailRegex = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	re := regexp.MustCompile(emailRegex)
	return re.MatchString(email)
}

// Loose phone check: optional leading +, then at least 10 digits, spaces,
// hyphens or parentheses.
var phoneRegex = regexp.MustCompile(`^[+]?[\d\s\-()]{10,}$`)

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// RegisterUser rejects invalid registrations before anything touches the
// store, so a weak password never reaches the hashing step.
func RegisterUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterUserInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Name == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Name is required", nil, "name")
		}
		if input.Email == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email is required", nil, "email")
		}
		if !isValidEmail(input.Email) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_EMAIL, nil, "email")
		}
		if len(input.Password) < 6 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.WEAK_PASSWORD, nil, "password")
		}
		if input.Password != input.ConfirmPassword {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Passwords do not match", nil, "confirmPassword")
		}
		if input.Phone == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phone number is required", nil, "phone")
		}
		if !isValidPhone(input.Phone) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Please enter a valid phone number", nil, "phone")
		}
		if input.UserType != constants.ROLE_STUDENT && input.UserType != constants.ROLE_OWNER {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "User type must be student or owner", nil, "userType")
		}
		if input.UserType == constants.ROLE_OWNER {
			if input.NidNumber == "" {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "NID number is required for property owners", nil, "nidNumber")
			}
			if len(input.NidNumber) < 10 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Please enter a valid NID number", nil, "nidNumber")
			}
			if input.Address == "" {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Address is required for property owners", nil, "address")
			}
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("RegisterUser", input)

		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Email == "" || input.Password == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, nil)
		}
		if len(input.Password) < 6 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.WEAK_PASSWORD, nil, "password")
		}

		c.Locals("LoginInput", input)

		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordRequest
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals("EmailForgotPassword", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordRequest
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals("ResetPassword", input)
		return c.Next()
	}
}
