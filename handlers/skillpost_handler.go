package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"gorm.io/datatypes"
)

type SkillPostRequest struct {
	Title           string         `json:"title" validate:"required,min=3"`
	Description     string         `json:"description" validate:"required,min=10"`
	Tags            []string       `json:"tags"`
	ImageURL        *string        `json:"image_url" validate:"omitempty,url"`
	ExperienceLevel *string        `json:"experience_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	SessionLength   int            `json:"session_length" validate:"omitempty,min=15,max=240"`
	Availability    datatypes.JSON `json:"availability"`
}

func CreateSkillPost(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	mentorID, _ := uuid.Parse(claims["user_id"].(string))

	var req SkillPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sessionLength := req.SessionLength
	if sessionLength == 0 {
		sessionLength = 60
	}

	post := models.SkillPost{
		MentorID:        mentorID,
		Title:           req.Title,
		Description:     req.Description,
		Tags:            req.Tags,
		ImageURL:        req.ImageURL,
		ExperienceLevel: req.ExperienceLevel,
		SessionLength:   sessionLength,
		Availability:    req.Availability,
		Active:          true,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create skill post"})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func ListSkillPosts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	q := database.DB.Preload("Mentor").Order("created_at desc")

	if tag := c.Query("tag"); tag != "" {
		// Tags are stored json-serialized; a LIKE match keeps the filter
		// portable across dialects.
		q = q.Where("tags LIKE ?", "%\""+tag+"\"%")
	}
	if level := c.Query("experience_level"); level != "" {
		q = q.Where("experience_level = ?", level)
	}
	if mentorID := c.Query("mentor_id"); mentorID != "" {
		q = q.Where("mentor_id = ?", mentorID)
	}
	if c.Query("include_inactive") != "true" {
		q = q.Where("active = ?", true)
	}

	var posts []models.SkillPost
	if err := q.Limit(pageSize).Offset((page - 1) * pageSize).Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch skill posts"})
	}

	return c.JSON(posts)
}

func GetSkillPost(c *fiber.Ctx) error {
	postID := c.Params("postId")

	var post models.SkillPost
	if err := database.DB.Preload("Mentor").First(&post, "id = ?", postID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Skill post not found"})
	}

	return c.JSON(post)
}

func GetMySkillPosts(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	mentorID, _ := uuid.Parse(claims["user_id"].(string))

	var posts []models.SkillPost
	database.DB.Where("mentor_id = ?", mentorID).Order("created_at desc").Find(&posts)

	return c.JSON(posts)
}

func UpdateSkillPost(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	mentorID, _ := uuid.Parse(claims["user_id"].(string))
	postID := c.Params("postId")

	var post models.SkillPost
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Skill post not found"})
	}
	if post.MentorID != mentorID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the owner of this skill post"})
	}

	type UpdateRequest struct {
		Title           *string         `json:"title" validate:"omitempty,min=3"`
		Description     *string         `json:"description" validate:"omitempty,min=10"`
		Tags            []string        `json:"tags"`
		ImageURL        *string         `json:"image_url" validate:"omitempty,url"`
		ExperienceLevel *string         `json:"experience_level" validate:"omitempty,oneof=beginner intermediate advanced"`
		SessionLength   *int            `json:"session_length" validate:"omitempty,min=15,max=240"`
		Availability    datatypes.JSON  `json:"availability"`
		Active          *bool           `json:"active"`
	}
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.ImageURL != nil {
		post.ImageURL = req.ImageURL
	}
	if req.ExperienceLevel != nil {
		post.ExperienceLevel = req.ExperienceLevel
	}
	if req.SessionLength != nil {
		post.SessionLength = *req.SessionLength
	}
	if req.Availability != nil {
		post.Availability = req.Availability
	}
	if req.Active != nil {
		post.Active = *req.Active
	}
	database.DB.Save(&post)

	return c.JSON(post)
}

func DeleteSkillPost(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	mentorID, _ := uuid.Parse(claims["user_id"].(string))
	postID := c.Params("postId")

	var post models.SkillPost
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Skill post not found"})
	}
	if post.MentorID != mentorID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the owner of this skill post"})
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete skill post"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetPopularCategories returns the curated category strip shown on the
// explore page. Static for now; no ranking is computed server side.
func GetPopularCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": []string{
			"Programming",
			"Languages",
			"Music",
			"Design",
			"Fitness",
			"Cooking",
			"Photography",
			"Business",
		},
	})
}
