package handlers

import (
	"time"

	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

func GetMerchantDashboard(c *fiber.Ctx) error {
	studioID := c.Locals("marketplace_uid").(uuid.UUID)
	role := c.Locals("marketplace_role").(models.CanonicalRole)
	if role != models.RoleMerchant {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Studio account required"})
	}

	var upcomingClasses int64
	database.DB.Model(&models.Class{}).
		Where("studio_id = ? AND status = ? AND start_time > ?", studioID, "scheduled", time.Now()).
		Count(&upcomingClasses)

	var confirmedBookings int64
	database.DB.Model(&models.Booking{}).
		Joins("JOIN classes ON bookings.class_id = classes.id").
		Where("classes.studio_id = ? AND bookings.status = ?", studioID, "confirmed").
		Count(&confirmedBookings)

	var activeLinks int64
	database.DB.Model(&models.MarketplaceLink{}).
		Where("studio_id = ? AND status = ?", studioID, models.LinkStatusActive).
		Count(&activeLinks)

	var pendingInvites int64
	database.DB.Model(&models.MarketplaceLink{}).
		Where("studio_id = ? AND status = ?", studioID, models.LinkStatusInvited).
		Count(&pendingInvites)

	var monthlyRevenue []MonthlyRevenue
	database.DB.Model(&models.Booking{}).
		Select("TO_CHAR(bookings.created_at, 'YYYY-MM') as month, SUM(bookings.price) as revenue").
		Joins("JOIN classes ON bookings.class_id = classes.id").
		Where("classes.studio_id = ? AND bookings.status IN ?", studioID, []string{"confirmed", "completed"}).
		Group("month").
		Order("month asc").
		Scan(&monthlyRevenue)

	var totalRevenue float64
	for _, mr := range monthlyRevenue {
		totalRevenue += mr.Revenue
	}

	return c.JSON(fiber.Map{
		"upcoming_classes":     upcomingClasses,
		"confirmed_bookings":   confirmedBookings,
		"active_instructors":   activeLinks,
		"pending_invites":      pendingInvites,
		"total_revenue":        totalRevenue,
		"monthly_revenue_data": monthlyRevenue,
	})
}

func GetInstructorDashboard(c *fiber.Ctx) error {
	instructorID := c.Locals("marketplace_uid").(uuid.UUID)
	role := c.Locals("marketplace_role").(models.CanonicalRole)
	if role != models.RoleInstructor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Instructor account required"})
	}

	inviteCounts := map[string]int64{}
	for _, status := range []string{
		models.LinkStatusInvited,
		models.LinkStatusActive,
		models.LinkStatusRejected,
		models.LinkStatusBlocked,
	} {
		var count int64
		database.DB.Model(&models.MarketplaceLink{}).
			Where("instructor_id = ? AND status = ?", instructorID, status).
			Count(&count)
		inviteCounts[status] = count
	}

	var upcomingClasses []models.Class
	database.DB.Preload("Studio").
		Where("instructor_id = ? AND status = ? AND start_time > ?", instructorID, "scheduled", time.Now()).
		Order("start_time asc").
		Limit(10).
		Find(&upcomingClasses)

	var profile models.InstructorProfile
	visible := false
	if err := database.DB.First(&profile, "user_id = ?", instructorID).Error; err == nil {
		visible = profile.MarketplaceVisible
	}

	return c.JSON(fiber.Map{
		"invites_by_status":   inviteCounts,
		"upcoming_classes":    upcomingClasses,
		"marketplace_visible": visible,
	})
}
