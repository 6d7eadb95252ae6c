package user

import (
	"strings"

	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type RegisterUserRequest struct {
	UserCode string `json:"user_code" validate:"required,min=3,max=32,alphanum"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

func (r *RegisterUserRequest) Validate() error {
	return validate.Struct(r)
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := req.Validate(); err != nil {
		return helpers.JSONError(c, "INVALID_USER_FIELDS")
	}

	userCode := strings.ToLower(strings.TrimSpace(req.UserCode))
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "INR"
	}

	var existing models.User
	if err := database.DB.Where("user_code = ?", userCode).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "USER_ALREADY_EXISTS")
	}

	user := models.User{
		UserCode: userCode,
		Currency: currency,
		Balance:  0,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_USER")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"user_code": user.UserCode,
		"currency":  user.Currency,
		"balance":   user.Balance,
	})
}
