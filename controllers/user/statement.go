package user

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

type StatementRequest struct {
	UserCode string `json:"user_code"`
	Limit    int    `json:"limit"`
}

// Statement returns the user's most recent ledger entries, newest
// first. The ledger is append-only; this is a pure read.
func Statement(c *fiber.Ctx) error {
	var req StatementRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.UserCode == "" {
		return helpers.JSONError(c, "USER_CODE_REQUIRED")
	}

	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var u models.User
	if err := database.DB.Where("user_code = ? AND is_active = true", req.UserCode).First(&u).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}

	var entries []models.LedgerEntry
	if err := database.DB.
		Where("user_id = ?", u.ID).
		Order("id desc").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_STATEMENT")
	}

	return helpers.JSONSuccess(c, "Statement retrieved successfully", fiber.Map{
		"user_code": u.UserCode,
		"balance":   u.Balance,
		"entries":   entries,
	})
}
