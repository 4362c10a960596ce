package validate

import (
	"encoding/json"
	"testing"

	"mess_finder/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func submitTestApp(t *testing.T) (*fiber.App, *model.CreateSeatInput) {
	t.Helper()
	app := fiber.New()
	var captured model.CreateSeatInput
	app.Post("/requests", SubmitSeat(), func(c *fiber.Ctx) error {
		captured = c.Locals("SubmitSeat").(model.CreateSeatInput)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &captured
}

func validSeatBody(overrides map[string]interface{}) string {
	body := map[string]interface{}{
		"title":       "Modern Mess - Shaheb Bazar",
		"type":        "Mess",
		"gender":      "Boys",
		"price":       4500,
		"location":    "Shaheb Bazar, Rajshahi",
		"contact":     "+8801712345678",
		"totalSeats":  10,
		"vacantSeats": 4,
	}
	for k, v := range overrides {
		body[k] = v
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

func TestSubmitSeat_Valid(t *testing.T) {
	app, captured := submitTestApp(t)

	status, _ := postJSON(t, app, "/requests", validSeatBody(nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 10, captured.TotalSeats)
	assert.Equal(t, 4, captured.VacantSeats)
}

func TestSubmitSeat_RequiredFields(t *testing.T) {
	app, _ := submitTestApp(t)

	cases := []struct {
		overrides map[string]interface{}
		keyError  string
	}{
		{map[string]interface{}{"title": ""}, "title"},
		{map[string]interface{}{"type": "Hotel"}, "type"},
		{map[string]interface{}{"gender": "Mixed"}, "gender"},
		{map[string]interface{}{"price": 0}, "price"},
		{map[string]interface{}{"location": ""}, "location"},
		{map[string]interface{}{"contact": ""}, "contact"},
		{map[string]interface{}{"occupancyType": "Penta"}, "occupancyType"},
	}

	for _, tc := range cases {
		status, body := postJSON(t, app, "/requests", validSeatBody(tc.overrides))
		assert.Equal(t, fiber.StatusBadRequest, status, "expected rejection for %v", tc.overrides)
		assert.Equal(t, tc.keyError, body["keyError"])
	}
}

func TestSubmitSeat_UnknownAmenity(t *testing.T) {
	app, _ := submitTestApp(t)

	status, body := postJSON(t, app, "/requests", validSeatBody(map[string]interface{}{
		"amenities": []string{"WiFi", "Helipad"},
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "amenities", body["keyError"])
}

func TestSubmitSeat_TooManyImages(t *testing.T) {
	app, _ := submitTestApp(t)

	status, body := postJSON(t, app, "/requests", validSeatBody(map[string]interface{}{
		"images": []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"},
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "images", body["keyError"])
}

func TestSubmitSeat_VacancyClampedToCapacity(t *testing.T) {
	app, captured := submitTestApp(t)

	status, _ := postJSON(t, app, "/requests", validSeatBody(map[string]interface{}{
		"totalSeats":  5,
		"vacantSeats": 12,
	}))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 5, captured.VacantSeats)
}

func TestSubmitSeat_ZeroCapacityDefaultsToOne(t *testing.T) {
	app, captured := submitTestApp(t)

	status, _ := postJSON(t, app, "/requests", validSeatBody(map[string]interface{}{
		"totalSeats":  0,
		"vacantSeats": 0,
	}))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, captured.TotalSeats)
	assert.Equal(t, 1, captured.VacantSeats)
}

func TestSubmitSeat_NegativeCountsRejected(t *testing.T) {
	app, _ := submitTestApp(t)

	status, body := postJSON(t, app, "/requests", validSeatBody(map[string]interface{}{
		"totalSeats": -1,
	}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "totalSeats", body["keyError"])
}

func TestBookSeat_Defaults(t *testing.T) {
	app := fiber.New()
	var captured model.BookSeatInput
	app.Post("/book", BookSeat(), func(c *fiber.Ctx) error {
		captured = c.Locals("BookSeat").(model.BookSeatInput)
		return c.SendStatus(fiber.StatusOK)
	})

	status, _ := postJSON(t, app, "/book", `{}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, captured.Seats, "empty body books one seat")

	status, _ = postJSON(t, app, "/book", `{"seats":3}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 3, captured.Seats)

	status, body := postJSON(t, app, "/book", `{"seats":-2}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "seats", body["keyError"])
}
