package handlers

import (
	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/models"
	"github.com/fitstudio/marketplace/notifications"
	"github.com/gofiber/fiber/v2"
)

func ListUnverifiedInstructors(c *fiber.Ctx) error {
	var pending []models.InstructorProfile
	if err := database.DB.Preload("User").Where("verified = ?", false).Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pending)
}

func SetInstructorVerification(c *fiber.Ctx) error {
	type VerifyRequest struct {
		Verified bool `json:"verified"`
	}

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	instructorID := c.Params("instructorId")

	var profile models.InstructorProfile
	if err := database.DB.Preload("User").First(&profile, "user_id = ?", instructorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor profile not found"})
	}

	profile.Verified = req.Verified
	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update verification"})
	}

	if req.Verified {
		go notifications.SendEmail(profile.User.FullName, profile.User.Email, "You Are Verified!",
			"<h1>Verified</h1><p>Your instructor profile has been verified and now carries a verified badge in the directory.</p>")
	}

	return c.JSON(fiber.Map{"user_id": profile.UserID, "verified": profile.Verified})
}

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	query := database.DB.Order("created_at desc")

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}
