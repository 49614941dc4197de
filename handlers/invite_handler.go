package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	config "github.com/fitstudio/marketplace/configs"
	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/fitstudio/marketplace/models"
	"github.com/fitstudio/marketplace/notifications"
	"github.com/fitstudio/marketplace/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultInviteTTLHours = 336 // 14 days

func inviteTTL() time.Duration {
	if hours, err := strconv.Atoi(config.Config("INVITE_TTL_HOURS")); err == nil && hours > 0 {
		return time.Duration(hours) * time.Hour
	}
	return defaultInviteTTLHours * time.Hour
}

type CreateInviteRequest struct {
	InstructorID   string  `json:"instructor_id" validate:"required,uuid"`
	ProposedRate   float64 `json:"proposed_rate"`
	Currency       string  `json:"currency,omitempty"`
	CancelFeeCents int64   `json:"cancel_fee_cents,omitempty"`
	NoShowFeeCents int64   `json:"no_show_fee_cents,omitempty"`
	ClassID        *string `json:"class_id,omitempty"`
	Note           *string `json:"note,omitempty"`
}

func CreateInvite(c *fiber.Ctx) error {
	studioID := c.Locals("marketplace_uid").(uuid.UUID)
	role := c.Locals("marketplace_role").(models.CanonicalRole)
	if role != models.RoleMerchant {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only studios can send invites"})
	}

	var req CreateInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	instructorID, _ := uuid.Parse(req.InstructorID)

	// At most one link per pair: a pending or accepted invite blocks a new one.
	var existing models.MarketplaceLink
	err := database.DB.First(&existing, "studio_id = ? AND instructor_id = ?", studioID, instructorID).Error
	if err == nil && models.LinkBlocksNewInvite(existing.Status) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "An invite for this instructor is already pending or active"})
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	link := models.MarketplaceLink{
		StudioID:       studioID,
		InstructorID:   instructorID,
		Status:         models.LinkStatusInvited,
		ProposedRate:   models.ClampProposedRate(req.ProposedRate),
		Currency:       currency,
		CancelFeeCents: models.ClampFeeCents(req.CancelFeeCents),
		NoShowFeeCents: models.ClampFeeCents(req.NoShowFeeCents),
		Note:           req.Note,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(inviteTTL()),
	}
	if req.ClassID != nil {
		if classID, err := uuid.Parse(*req.ClassID); err == nil {
			link.ClassID = &classID
		}
	}

	// Upsert on the composite primary key, so re-inviting after a rejection
	// reuses the same row.
	if err := database.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&link).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create invite"})
	}

	go notifyInstructorOfInvite(link)
	websocket.Push(instructorID, "invite.received", link)

	return c.Status(fiber.StatusCreated).JSON(link)
}

func notifyInstructorOfInvite(link models.MarketplaceLink) {
	var instructor models.User
	if err := database.DB.First(&instructor, "id = ?", link.InstructorID).Error; err != nil {
		return
	}
	var studio models.User
	if err := database.DB.First(&studio, "id = ?", link.StudioID).Error; err != nil {
		return
	}
	studioName := studio.FullName
	if studio.StudioName != nil {
		studioName = *studio.StudioName
	}
	notifications.SendEmail(instructor.FullName, instructor.Email, "New Collaboration Invite",
		fmt.Sprintf("<h1>New Invite</h1><p>%s invited you to teach with them at a proposed rate of %.2f %s per hour.</p>",
			studioName, link.ProposedRate, link.Currency))
}

type RespondToInviteRequest struct {
	Accept bool `json:"accept"`
}

func RespondToInvite(c *fiber.Ctx) error {
	actingUID := middleware.TokenUserID(c)
	studioID, err := uuid.Parse(c.Params("studioId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invite not found"})
	}
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invite not found"})
	}

	// Only the invited instructor may answer.
	if !models.CanRespondToInvite(actingUID, instructorID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only respond to your own invites"})
	}

	var req RespondToInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var link models.MarketplaceLink
	if err := database.DB.First(&link, "studio_id = ? AND instructor_id = ?", studioID, instructorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invite not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Accept {
		link.Status = models.LinkStatusActive
	} else {
		link.Status = models.LinkStatusRejected
	}
	link.UpdatedAt = time.Now()

	if err := database.DB.Save(&link).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update invite"})
	}

	websocket.Push(studioID, "invite.answered", link)

	return c.JSON(fiber.Map{
		"success":    true,
		"status":     link.Status,
		"updated_at": link.UpdatedAt,
	})
}

func WithdrawInvite(c *fiber.Ctx) error {
	actingUID := middleware.TokenUserID(c)
	studioID, err := uuid.Parse(c.Params("studioId"))
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only withdraw your own invites"})
	}
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only withdraw your own invites"})
	}

	// Only the inviting studio may withdraw.
	if !models.CanWithdrawInvite(actingUID, studioID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only withdraw your own invites"})
	}

	// Blocking is unconditional and idempotent; withdrawing an already
	// blocked (or missing) link is a no-op success.
	result := database.DB.Model(&models.MarketplaceLink{}).
		Where("studio_id = ? AND instructor_id = ?", studioID, instructorID).
		Updates(map[string]interface{}{"status": models.LinkStatusBlocked, "updated_at": time.Now()})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to withdraw invite"})
	}

	return c.JSON(fiber.Map{"success": true})
}

type inviteView struct {
	models.MarketplaceLink
	IsExpired bool `json:"is_expired"`
}

func ListInvites(c *fiber.Ctx) error {
	uid := c.Locals("marketplace_uid").(uuid.UUID)

	roleParam := c.Query("role")
	if roleParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "role query parameter is required"})
	}

	query := database.DB.Order("updated_at desc")
	switch models.CanonicalizeRole(roleParam) {
	case models.RoleMerchant:
		query = query.Where("studio_id = ?", uid)
	case models.RoleInstructor:
		query = query.Where("instructor_id = ?", uid)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "role must be merchant or instructor"})
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var links []models.MarketplaceLink
	if err := query.Find(&links).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list invites"})
	}

	now := time.Now()
	invites := make([]inviteView, 0, len(links))
	for _, link := range links {
		invites = append(invites, inviteView{MarketplaceLink: link, IsExpired: link.IsExpired(now)})
	}

	return c.JSON(fiber.Map{"invites": invites})
}
