package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"gorm.io/gorm"
)

// ToggleBookmark adds or removes a bookmark; the composite unique index on
// (user_id, skill_post_id) keeps concurrent toggles from duplicating rows.
func ToggleBookmark(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid skill post id"})
	}

	var post models.SkillPost
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Skill post not found"})
	}

	var existing models.Bookmark
	err = database.DB.Where("user_id = ? AND skill_post_id = ?", userID, postID).First(&existing).Error
	if err == nil {
		database.DB.Delete(&existing)
		return c.JSON(fiber.Map{"bookmarked": false})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	bookmark := models.Bookmark{UserID: userID, SkillPostID: postID}
	if err := database.DB.Create(&bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(fiber.Map{"bookmarked": true})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create bookmark"})
	}

	return c.JSON(fiber.Map{"bookmarked": true})
}

func GetMyBookmarks(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var bookmarks []models.Bookmark
	database.DB.
		Preload("SkillPost.Mentor").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookmarks)

	return c.JSON(bookmarks)
}
