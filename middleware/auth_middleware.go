package middleware

import (
	"errors"

	config "github.com/fitstudio/marketplace/configs"
	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "Missing or malformed token"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or expired token"})
}

// TokenUserID extracts the authenticated user id set by Protected().
func TokenUserID(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return claims["user_id"].(string)
}

// MarketplaceRequired loads the caller's profile, canonicalizes the role and
// enforces onboarding plus merchant/instructor membership. Must run after
// Protected(), before any marketplace mutation or directory access.
func MarketplaceRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := TokenUserID(c)

		var user models.User
		err := database.DB.First(&user, "id = ?", userID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}

		// A missing profile counts as role=unknown, not onboarded. The
		// onboarding check comes before any role check.
		if err != nil || !user.OnboardingComplete {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Complete onboarding before using the marketplace"})
		}

		role := models.CanonicalizeRole(user.Role)
		if !role.MarketplaceEligible() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Marketplace access requires a studio or instructor account"})
		}

		c.Locals("marketplace_uid", user.ID)
		c.Locals("marketplace_role", role)
		return c.Next()
	}
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		role := claims["role"].(string)

		if role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}
