package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"github.com/mbugua512/skillswap/services"
)

type UpdateProfileRequest struct {
	DisplayName *string  `json:"display_name" validate:"omitempty,min=2"`
	PhotoURL    *string  `json:"photo_url" validate:"omitempty,url"`
	Bio         *string  `json:"bio"`
	Location    *string  `json:"location"`
	Website     *string  `json:"website" validate:"omitempty,url"`
	Github      *string  `json:"github"`
	Linkedin    *string  `json:"linkedin"`
	Expertise   []string `json:"expertise"`
	Role        *string  `json:"role" validate:"omitempty,oneof=learner mentor both"`
}

func GetProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	user, err := services.Profiles.GetProfile(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}

// UpdateProfile accepts only presentation fields. Rating, review count, XP
// and the ban flag have dedicated owners and are never writable here.
func UpdateProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = req.PhotoURL
	}
	if req.Bio != nil {
		updates["bio"] = req.Bio
	}
	if req.Location != nil {
		updates["location"] = req.Location
	}
	if req.Website != nil {
		updates["website"] = req.Website
	}
	if req.Github != nil {
		updates["github"] = req.Github
	}
	if req.Linkedin != nil {
		updates["linkedin"] = req.Linkedin
	}
	if req.Expertise != nil {
		updates["expertise"] = req.Expertise
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if len(updates) > 0 {
		if err := services.Profiles.UpdateProfile(c.Context(), userID, updates); err != nil {
			return serviceError(c, err)
		}
	}

	user, err := services.Profiles.GetProfile(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func GetPublicProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	user, err := services.Profiles.GetProfile(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}

func GetUserReviews(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))

	reviews, err := services.ListReviewsForMentor(c.Context(), userID, page, pageSize)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(reviews)
}

func GetMyProgress(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var pendingRequests int64
	database.DB.Model(&models.Session{}).
		Where("(mentor_id = ? OR learner_id = ?) AND status = ?", userID, userID, models.SessionStatusPending).
		Count(&pendingRequests)

	var reviewsGiven int64
	database.DB.Model(&models.Review{}).Where("learner_id = ?", userID).Count(&reviewsGiven)

	return c.JSON(fiber.Map{
		"xp":                 user.XP,
		"sessions_completed": user.SessionsCompleted,
		"rating":             user.Rating,
		"review_count":       user.ReviewCount,
		"pending_requests":   pendingRequests,
		"reviews_given":      reviewsGiven,
	})
}
