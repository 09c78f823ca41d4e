package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
)

type CreateReportRequest struct {
	Type        string `json:"type" validate:"required,oneof=user skillPost review"`
	ItemID      string `json:"item_id" validate:"required"`
	Reason      string `json:"reason" validate:"required,min=3"`
	Description string `json:"description"`
}

func CreateReport(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	reporterID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report := models.Report{
		Type:        req.Type,
		ItemID:      req.ItemID,
		ReporterID:  &reporterID,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportStatusPending,
	}
	if err := database.DB.Create(&report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create report"})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func ListPendingReports(c *fiber.Ctx) error {
	var reports []models.Report
	if err := database.DB.Where("status = ?", models.ReportStatusPending).Order("created_at asc").Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(reports)
}

func ResolveReport(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	adminID, _ := uuid.Parse(claims["user_id"].(string))
	reportID := c.Params("reportId")

	var report models.Report
	if err := database.DB.First(&report, "id = ?", reportID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}
	if report.Status == models.ReportStatusResolved {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Report already resolved"})
	}

	now := time.Now()
	report.Status = models.ReportStatusResolved
	report.ResolvedBy = &adminID
	report.ResolvedAt = &now
	if err := database.DB.Save(&report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve report"})
	}

	return c.JSON(report)
}
