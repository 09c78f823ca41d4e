package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mbugua512/skillswap/handlers"
	"github.com/mbugua512/skillswap/middleware"
)

func SkillPostRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/skill-posts", handlers.ListSkillPosts)
	api.Get("/skill-posts/:postId", handlers.GetSkillPost)
	api.Get("/categories/popular", handlers.GetPopularCategories)

	posts := api.Group("/skill-posts", middleware.Protected())
	posts.Get("/me/mine", handlers.GetMySkillPosts)
	posts.Post("", middleware.MentorRequired(), handlers.CreateSkillPost)
	posts.Put("/:postId", middleware.MentorRequired(), handlers.UpdateSkillPost)
	posts.Delete("/:postId", middleware.MentorRequired(), handlers.DeleteSkillPost)
	posts.Post("/:postId/bookmark", handlers.ToggleBookmark)

	bookmarks := api.Group("/bookmarks", middleware.Protected())
	bookmarks.Get("/me", handlers.GetMyBookmarks)
}
