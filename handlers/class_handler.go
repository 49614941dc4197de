package handlers

import (
	"errors"
	"time"

	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateClassRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description,omitempty"`
	StartTime    string  `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime      string  `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Capacity     int     `json:"capacity" validate:"required,min=1"`
	Price        float64 `json:"price" validate:"min=0"`
	Currency     string  `json:"currency,omitempty"`
	Location     *string `json:"location,omitempty"`
	Remote       bool    `json:"remote,omitempty"`
	InstructorID *string `json:"instructor_id,omitempty" validate:"omitempty,uuid"`
}

func CreateClass(c *fiber.Ctx) error {
	studioID := c.Locals("marketplace_uid").(uuid.UUID)
	role := c.Locals("marketplace_role").(models.CanonicalRole)
	if role != models.RoleMerchant {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only studios can create classes"})
	}

	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)
	if !startTime.Before(endTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	newClass := models.Class{
		StudioID:    studioID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Currency:    currency,
		Location:    req.Location,
		Remote:      req.Remote,
	}

	if req.InstructorID != nil {
		instructorID, _ := uuid.Parse(*req.InstructorID)
		if err := requireActiveLink(studioID, instructorID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		newClass.InstructorID = &instructorID
	}

	if err := database.DB.Create(&newClass).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(fiber.StatusCreated).JSON(newClass)
}

// requireActiveLink gates instructor assignment on an accepted collaboration.
func requireActiveLink(studioID, instructorID uuid.UUID) error {
	var link models.MarketplaceLink
	err := database.DB.First(&link, "studio_id = ? AND instructor_id = ?", studioID, instructorID).Error
	if err != nil || link.Status != models.LinkStatusActive {
		return errors.New("instructor is not actively linked to your studio")
	}
	return nil
}

func ListClasses(c *fiber.Ctx) error {
	var classes []models.Class
	query := database.DB.Preload("Studio").
		Where("status = ? AND start_time > ?", "scheduled", time.Now()).
		Order("start_time asc")

	if studioID := c.Query("studio_id"); studioID != "" {
		query = query.Where("studio_id = ?", studioID)
	}

	if err := query.Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve classes"})
	}

	return c.JSON(classes)
}

func GetClass(c *fiber.Ctx) error {
	classID := c.Params("classId")

	var class models.Class
	if err := database.DB.Preload("Studio").Preload("Instructor").First(&class, "id = ?", classID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	return c.JSON(class)
}

type UpdateClassRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Capacity     *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Location     *string  `json:"location,omitempty"`
	InstructorID *string  `json:"instructor_id,omitempty" validate:"omitempty,uuid"`
}

func UpdateClass(c *fiber.Ctx) error {
	studioID := c.Locals("marketplace_uid").(uuid.UUID)
	classID := c.Params("classId")

	var req UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var class models.Class
	if err := database.DB.First(&class, "id = ? AND studio_id = ?", classID, studioID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	if req.Title != nil {
		class.Title = *req.Title
	}
	if req.Description != nil {
		class.Description = req.Description
	}
	if req.Capacity != nil {
		class.Capacity = *req.Capacity
	}
	if req.Price != nil {
		class.Price = *req.Price
	}
	if req.Location != nil {
		class.Location = req.Location
	}
	if req.InstructorID != nil {
		instructorID, _ := uuid.Parse(*req.InstructorID)
		if err := requireActiveLink(studioID, instructorID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		class.InstructorID = &instructorID
	}

	if err := database.DB.Save(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(class)
}

func CancelClass(c *fiber.Ctx) error {
	studioID := c.Locals("marketplace_uid").(uuid.UUID)
	classID := c.Params("classId")

	var class models.Class
	if err := database.DB.First(&class, "id = ? AND studio_id = ?", classID, studioID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		class.Status = "cancelled"
		if err := tx.Save(&class).Error; err != nil {
			return err
		}
		return tx.Model(&models.Booking{}).
			Where("class_id = ? AND status IN ?", class.ID, []string{"pending_payment", "confirmed"}).
			Update("status", "cancelled").Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel class"})
	}

	return c.JSON(fiber.Map{"message": "Class cancelled"})
}
