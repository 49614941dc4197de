package handlers

import (
	"errors"
	"time"

	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/fitstudio/marketplace/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompleteOnboardingRequest struct {
	Role       string  `json:"role" validate:"required,oneof=customer instructor merchant studio studio-owner"`
	StudioName *string `json:"studio_name,omitempty"`
	TimeZone   *string `json:"time_zone,omitempty"`

	// Instructor wizard fields; ignored for other roles.
	DisplayName *string   `json:"display_name,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Specialties *[]string `json:"specialties,omitempty"`
	HourlyRate  *float64  `json:"hourly_rate,omitempty"`
}

func CompleteOnboarding(c *fiber.Ctx) error {
	uid, _ := uuid.Parse(middleware.TokenUserID(c))

	var req CompleteOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", uid).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Role = req.Role
	user.OnboardingComplete = true
	if req.StudioName != nil {
		user.StudioName = req.StudioName
	}
	if req.TimeZone != nil {
		user.TimeZone = req.TimeZone
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete onboarding"})
	}

	// Instructors get their marketplace record on first onboarding write.
	if models.CanonicalizeRole(req.Role) == models.RoleInstructor {
		var profile models.InstructorProfile
		err := database.DB.First(&profile, "user_id = ?", uid).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		profile.UserID = uid
		if req.DisplayName != nil {
			profile.DisplayName = req.DisplayName
		}
		if req.Bio != nil {
			profile.Bio = req.Bio
		}
		if req.Specialties != nil {
			profile.Specialties = *req.Specialties
		}
		if req.HourlyRate != nil {
			profile.HourlyRate = *req.HourlyRate
		}
		if profile.Currency == "" {
			profile.Currency = "USD"
		}
		profile.LastActiveAt = time.Now()
		if err := database.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&profile).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create instructor profile"})
		}
	}

	return c.JSON(fiber.Map{
		"onboarding_complete": true,
		"role":                user.Role,
	})
}

func GetOnboardingStatus(c *fiber.Ctx) error {
	uid := middleware.TokenUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", uid).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"onboarding_complete": user.OnboardingComplete,
		"role":                user.Role,
		"canonical_role":      models.CanonicalizeRole(user.Role),
	})
}
