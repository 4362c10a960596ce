package validate

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"mess_finder/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestApp(t *testing.T) (*fiber.App, *model.RegisterUserInput) {
	t.Helper()
	app := fiber.New()
	var captured model.RegisterUserInput
	app.Post("/register", RegisterUser(), func(c *fiber.Ctx) error {
		captured = c.Locals("RegisterUser").(model.RegisterUserInput)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &captured
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		json.Unmarshal(raw, &parsed)
	}
	return resp.StatusCode, parsed
}

func validRegisterBody(overrides map[string]interface{}) string {
	body := map[string]interface{}{
		"name":            "Rakib Hasan",
		"email":           "rakib@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"phone":           "+8801712345678",
		"userType":        "student",
	}
	for k, v := range overrides {
		body[k] = v
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

func TestRegisterUser_ValidStudent(t *testing.T) {
	app, captured := registerTestApp(t)

	status, _ := postJSON(t, app, "/register", validRegisterBody(nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "rakib@example.com", captured.Email)
	assert.Equal(t, "student", captured.UserType)
}

// A short password is rejected here, before the handler ever hashes it or
// touches the user store.
func TestRegisterUser_WeakPassword(t *testing.T) {
	app, _ := registerTestApp(t)

	status, body := postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"password":        "abc",
		"confirmPassword": "abc",
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "password", body["keyError"])
}

func TestRegisterUser_PasswordMismatch(t *testing.T) {
	app, _ := registerTestApp(t)

	status, body := postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"confirmPassword": "different1",
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "confirmPassword", body["keyError"])
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	app, _ := registerTestApp(t)

	status, body := postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"email": "not-an-email",
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "email", body["keyError"])
}

func TestRegisterUser_InvalidPhone(t *testing.T) {
	app, _ := registerTestApp(t)

	status, body := postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"phone": "12345",
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "phone", body["keyError"])
}

func TestRegisterUser_UnknownUserType(t *testing.T) {
	app, _ := registerTestApp(t)

	status, body := postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"userType": "admin",
	}))
	assert.Equal(t, fiber.StatusBadRequest, status, "admin accounts cannot be self-registered")
	assert.Equal(t, "userType", body["keyError"])
}

func TestRegisterUser_OwnerNeedsNidAndAddress(t *testing.T) {
	app, captured := registerTestApp(t)

	status, body := postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"userType": "owner",
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "nidNumber", body["keyError"])

	status, body = postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"userType":  "owner",
		"nidNumber": "12345",
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "nidNumber", body["keyError"], "short NID rejected")

	status, body = postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"userType":  "owner",
		"nidNumber": "1234567890123",
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "address", body["keyError"])

	status, _ = postJSON(t, app, "/register", validRegisterBody(map[string]interface{}{
		"userType":  "owner",
		"nidNumber": "1234567890123",
		"address":   "Kazla, Rajshahi",
	}))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "owner", captured.UserType)
	assert.Equal(t, "1234567890123", captured.NidNumber)
}

func TestLogin_Validation(t *testing.T) {
	app := fiber.New()
	app.Post("/login", Login(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	status, _ := postJSON(t, app, "/login", `{"email":"","password":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := postJSON(t, app, "/login", `{"email":"rakib@example.com","password":"abc"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "password", body["keyError"])

	status, _ = postJSON(t, app, "/login", `{"email":"rakib@example.com","password":"secret123"}`)
	assert.Equal(t, fiber.StatusOK, status)
}
