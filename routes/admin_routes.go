package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mbugua512/skillswap/handlers"
	"github.com/mbugua512/skillswap/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/stats", handlers.GetPlatformStats)

	users := admin.Group("/users")
	users.Get("", handlers.ListUsers)
	users.Put("/:userId/ban", handlers.BanUser)
	users.Put("/:userId/unban", handlers.UnbanUser)

	reports := admin.Group("/reports")
	reports.Get("/pending", handlers.ListPendingReports)
	reports.Put("/:reportId/resolve", handlers.ResolveReport)
}
