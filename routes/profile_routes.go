package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mbugua512/skillswap/handlers"
	"github.com/mbugua512/skillswap/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
	profile.Get("/progress", handlers.GetMyProgress)

	users := api.Group("/users")
	users.Get("/:userId", handlers.GetPublicProfile)
	users.Get("/:userId/reviews", handlers.GetUserReviews)
}
