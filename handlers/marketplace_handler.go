package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/fitstudio/marketplace/models"
	"github.com/fitstudio/marketplace/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func SearchInstructors(c *fiber.Ctx) error {
	criteria := services.SearchCriteria{
		Lat:      queryFloat(c, "lat"),
		Lng:      queryFloat(c, "lng"),
		RadiusKm: queryFloat(c, "radiusKm"),
		MinRate:  queryFloat(c, "minRate"),
		MaxRate:  queryFloat(c, "maxRate"),
		Verified: queryBool(c, "verified"),
		Remote:   queryBool(c, "remote"),
	}
	if raw := c.Query("specialties"); raw != "" {
		criteria.Specialties = splitCSV(raw)
	}
	if raw := c.Query("languages"); raw != "" {
		criteria.Languages = splitCSV(raw)
	}

	instructors, err := services.SearchInstructors(criteria)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
	}

	return c.JSON(fiber.Map{"instructors": instructors})
}

func queryFloat(c *fiber.Ctx, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func queryBool(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func GetMarketplaceProfile(c *fiber.Ctx) error {
	uid := middleware.TokenUserID(c)

	var profile models.InstructorProfile
	if err := database.DB.First(&profile, "user_id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(profile)
}

// UpdateMarketplaceProfileRequest is the allow-list: any field the client
// submits outside this struct is silently dropped by the body parser.
type UpdateMarketplaceProfileRequest struct {
	DisplayName        *string   `json:"display_name"`
	Bio                *string   `json:"bio"`
	Specialties        *[]string `json:"specialties"`
	Certifications     *[]string `json:"certifications"`
	Languages          *[]string `json:"languages"`
	YearsExperience    *int      `json:"years_experience"`
	HourlyRate         *float64  `json:"hourly_rate"`
	Currency           *string   `json:"currency"`
	MinSessionMinutes  *int      `json:"min_session_minutes"`
	RemoteAvailable    *bool     `json:"remote_available"`
	TravelRadiusKm     *float64  `json:"travel_radius_km"`
	TimeZone           *string   `json:"time_zone"`
	Location           *string   `json:"location"`
	Lat                *float64  `json:"lat"`
	Lng                *float64  `json:"lng"`
	MarketplaceVisible *bool     `json:"marketplace_visible"`
	Verified           *bool     `json:"verified"`
}

func UpdateMarketplaceProfile(c *fiber.Ctx) error {
	uid, _ := uuid.Parse(middleware.TokenUserID(c))

	var req UpdateMarketplaceProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// First write creates the record.
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
	if req.Certifications != nil {
		profile.Certifications = *req.Certifications
	}
	if req.Languages != nil {
		profile.Languages = *req.Languages
	}
	if req.YearsExperience != nil {
		profile.YearsExperience = req.YearsExperience
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.Currency != nil {
		profile.Currency = *req.Currency
	}
	if req.MinSessionMinutes != nil {
		profile.MinSessionMinutes = req.MinSessionMinutes
	}
	if req.RemoteAvailable != nil {
		profile.RemoteAvailable = *req.RemoteAvailable
	}
	if req.TravelRadiusKm != nil {
		profile.TravelRadiusKm = req.TravelRadiusKm
	}
	if req.TimeZone != nil {
		profile.TimeZone = req.TimeZone
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.Lat != nil {
		profile.Lat = req.Lat
	}
	if req.Lng != nil {
		profile.Lng = req.Lng
	}
	if req.MarketplaceVisible != nil {
		profile.MarketplaceVisible = *req.MarketplaceVisible
	}
	if req.Verified != nil {
		profile.Verified = *req.Verified
	}
	if profile.Currency == "" {
		profile.Currency = "USD"
	}
	profile.LastActiveAt = time.Now()

	if err := database.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}

	// A new location without explicit coordinates gets resolved in the
	// background so directory geo search keeps working.
	if req.Location != nil && req.Lat == nil && req.Lng == nil {
		go resolveProfileCoordinates(uid, *req.Location)
	}

	return c.JSON(profile)
}

func resolveProfileCoordinates(uid uuid.UUID, location string) {
	result, err := services.GeocodeAddress(location)
	if err != nil {
		return
	}
	database.DB.Model(&models.InstructorProfile{}).
		Where("user_id = ?", uid).
		Updates(map[string]interface{}{"lat": result.Lat, "lng": result.Lng})
}

type SetVisibilityRequest struct {
	MarketplaceVisible bool `json:"marketplace_visible"`
}

func SetVisibility(c *fiber.Ctx) error {
	uid, _ := uuid.Parse(middleware.TokenUserID(c))

	var req SetVisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var profile models.InstructorProfile
	err := database.DB.First(&profile, "user_id = ?", uid).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	profile.UserID = uid
	profile.MarketplaceVisible = req.MarketplaceVisible
	if profile.Currency == "" {
		profile.Currency = "USD"
	}

	if err := database.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update visibility"})
	}

	return c.JSON(fiber.Map{"marketplace_visible": profile.MarketplaceVisible})
}
