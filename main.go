package main

import (
	"log"

	"mess_finder/database"
	"mess_finder/helper"
	"mess_finder/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // 4 images at 5MB each, plus form overhead
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartMaintenanceScheduler()
	defer helper.StopMaintenanceScheduler()
	helper.StartPendingSweep()
	defer helper.StopPendingSweep()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
