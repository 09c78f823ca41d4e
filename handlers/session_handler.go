package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/services"
)

type RequestSessionRequest struct {
	SkillPostID   string  `json:"skill_post_id" validate:"required,uuid"`
	Message       string  `json:"message"`
	ScheduledDate *string `json:"scheduled_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func RequestSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	learnerID, _ := uuid.Parse(claims["user_id"].(string))

	var req RequestSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	skillPostID, _ := uuid.Parse(req.SkillPostID)

	var scheduledDate *time.Time
	if req.ScheduledDate != nil {
		parsed, _ := time.Parse(time.RFC3339, *req.ScheduledDate)
		scheduledDate = &parsed
	}

	session, err := services.RequestSession(c.Context(), skillPostID, learnerID, req.Message, scheduledDate)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

func UpdateSessionStatus(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req UpdateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := services.UpdateSessionStatus(c.Context(), sessionID, actorID, req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(session)
}

func GetMySessions(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	roleFilter := c.Query("role", "both")

	sessions, err := services.ListSessionsForUser(c.Context(), userID, roleFilter)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(sessions)
}

func GetSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.GetSession(c.Context(), sessionID, actorID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(session)
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func SubmitReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	learnerID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.SubmitReview(c.Context(), sessionID, learnerID, req.Rating, req.Comment)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
