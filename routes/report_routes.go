package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mbugua512/skillswap/handlers"
	"github.com/mbugua512/skillswap/middleware"
)

func ReportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reports := api.Group("/reports", middleware.Protected())
	reports.Post("", handlers.CreateReport)
}
