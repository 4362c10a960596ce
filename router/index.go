package router

import (
	"mess_finder/handler"
	"mess_finder/middleware"
	"mess_finder/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterUser(), handler.RegisterUser)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	auth.Get("/verify-email", handler.VerifyEmail)
	auth.Post("/resend-verification", handler.ResendVerification)

	// Public listing grid
	seats := v1.Group("/seats", logger.New())
	seats.Get("/", middleware.OptionalJWT(), handler.GetSeats)
	seats.Get("/search", middleware.OptionalJWT(), handler.SearchSeats)
	seats.Get("/id/:seatId", validate.GetById("seatId"), handler.GetSeatById)
	seats.Get("/:slug", handler.GetSeatDetail)
	seats.Post("/:seatId/book", middleware.Protected(), validate.GetById("seatId"), validate.BookSeat(), handler.BookSeat)
	seats.Get("/ws/updates", websocket.New(handler.SeatWebsocket))

	// Listing submission and review
	requests := v1.Group("/requests", logger.New())
	requests.Post("/", middleware.Protected(), validate.SubmitSeat(), handler.SubmitSeat)
	requests.Get("/mine", middleware.Protected(), handler.GetMyPendingRequests)
	requests.Get("/", middleware.Protected(), handler.GetPendingRequests)
	requests.Patch("/:requestId/approve", middleware.Protected(), validate.GetById("requestId"), handler.ApproveRequest)
	requests.Delete("/:requestId/reject", middleware.Protected(), validate.GetById("requestId"), handler.RejectRequest)

	bookings := v1.Group("/bookings", logger.New())
	bookings.Get("/", middleware.Protected(), handler.GetMyBookings)
	bookings.Get("/:code/qr", middleware.Protected(), handler.GetBookingQR)

	owner := v1.Group("/owner", logger.New())
	owner.Get("/seats", middleware.Protected(), handler.GetMySeats)
	owner.Post("/images", middleware.Protected(), handler.UploadSeatImages)
	owner.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	admin := v1.Group("/admin", logger.New())
	admin.Get("/seats", middleware.Protected(), middleware.AdminOnly(), handler.GetAllSeats)
	admin.Delete("/seats", middleware.Protected(), validate.Delete(), handler.DeleteSeats)
	admin.Get("/users", middleware.Protected(), middleware.AdminOnly(), handler.GetUsers)
	admin.Get("/users/stats", middleware.Protected(), middleware.AdminOnly(), handler.GetUserStats)
	admin.Get("/logs", middleware.Protected(), handler.GetAdminLogs)
	admin.Get("/stats", middleware.Protected(), handler.GetAdminStats)
}
