package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"github.com/mbugua512/skillswap/notifications"
)

func ListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	q := database.DB.Order("created_at desc")
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if c.Query("banned") == "true" {
		q = q.Where("banned = ?", true)
	}

	var users []models.User
	if err := q.Limit(pageSize).Offset((page - 1) * pageSize).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(users)
}

type BanUserRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

func BanUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req BanUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role == "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot ban an admin"})
	}

	user.Banned = true
	user.BanReason = &req.Reason
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to ban user"})
	}

	go notifications.SendEmail(
		user.DisplayName,
		user.Email,
		"Your SkillSwap Account Has Been Suspended",
		"<h1>Account Suspended</h1><p>Your account has been suspended for violating our community guidelines. If you believe this is a mistake, please contact support.</p>",
	)

	return c.JSON(fiber.Map{"message": "User banned successfully"})
}

func UnbanUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Banned = false
	user.BanReason = nil
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unban user"})
	}

	return c.JSON(fiber.Map{"message": "User unbanned successfully"})
}

func GetPlatformStats(c *fiber.Ctx) error {
	var totalUsers, totalSkillPosts, totalSessions, completedSessions, totalReviews int64

	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.SkillPost{}).Count(&totalSkillPosts)
	database.DB.Model(&models.Session{}).Count(&totalSessions)
	database.DB.Model(&models.Session{}).Where("status = ?", models.SessionStatusCompleted).Count(&completedSessions)
	database.DB.Model(&models.Review{}).Count(&totalReviews)

	return c.JSON(fiber.Map{
		"total_users":        totalUsers,
		"total_skill_posts":  totalSkillPosts,
		"total_sessions":     totalSessions,
		"completed_sessions": completedSessions,
		"total_reviews":      totalReviews,
	})
}
