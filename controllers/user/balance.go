package user

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

type CheckBalanceRequest struct {
	UserCode string `json:"user_code"`
}

func CheckUserBalance(c *fiber.Ctx) error {
	var req CheckBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.UserCode == "" {
		return helpers.JSONError(c, "USER_CODE_REQUIRED")
	}

	var u models.User
	if err := database.DB.Where("user_code = ? AND is_active = true", req.UserCode).First(&u).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"user_code": u.UserCode,
		"balance":   u.Balance,
		"currency":  u.Currency,
	})
}
