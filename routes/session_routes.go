package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mbugua512/skillswap/handlers"
	"github.com/mbugua512/skillswap/middleware"
)

func SessionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Get("/me", handlers.GetMySessions)
	sessions.Post("", handlers.RequestSession)
	sessions.Get("/:sessionId", handlers.GetSession)
	sessions.Put("/:sessionId/status", handlers.UpdateSessionStatus)
	sessions.Post("/:sessionId/review", handlers.SubmitReview)
}
