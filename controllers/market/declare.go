package market

import (
	"errors"

	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

type DeclareRequest struct {
	MarketID uint   `json:"market_id" validate:"required"`
	Number   string `json:"number" validate:"required"`
}

func (r *DeclareRequest) Validate() error {
	return validate.Struct(r)
}

func DeclareOpen(c *fiber.Ctx) error {
	var req DeclareRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := req.Validate(); err != nil {
		return helpers.JSONError(c, "MARKET_ID_AND_NUMBER_REQUIRED")
	}

	summary, err := services.SettleOpening(req.MarketID, req.Number)
	if err != nil {
		return declareError(c, err)
	}
	return helpers.JSONSuccess(c, "Opening result declared", summary)
}

func DeclareClose(c *fiber.Ctx) error {
	var req DeclareRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := req.Validate(); err != nil {
		return helpers.JSONError(c, "MARKET_ID_AND_NUMBER_REQUIRED")
	}

	summary, err := services.SettleClosing(req.MarketID, req.Number)
	if err != nil {
		return declareError(c, err)
	}
	return helpers.JSONSuccess(c, "Closing result declared", summary)
}

func PreviewOpen(c *fiber.Ctx) error {
	var req DeclareRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.MarketID == 0 {
		return helpers.JSONError(c, "MARKET_ID_REQUIRED")
	}

	preview, err := services.PreviewDeclareOpen(req.MarketID, req.Number)
	if err != nil {
		return declareError(c, err)
	}
	return helpers.JSONSuccess(c, "Open settlement preview", preview)
}

func PreviewClose(c *fiber.Ctx) error {
	var req DeclareRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.MarketID == 0 {
		return helpers.JSONError(c, "MARKET_ID_REQUIRED")
	}

	preview, err := services.PreviewDeclareClose(req.MarketID, req.Number)
	if err != nil {
		return declareError(c, err)
	}
	return helpers.JSONSuccess(c, "Close settlement preview", preview)
}

func declareError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidNumber):
		return helpers.JSONError(c, "INVALID_RESULT_NUMBER")
	case errors.Is(err, services.ErrMarketNotFound):
		return helpers.JSONError(c, "MARKET_NOT_FOUND")
	case errors.Is(err, services.ErrOpeningNotDeclared):
		return helpers.JSONError(c, "OPENING_NOT_DECLARED")
	case errors.Is(err, services.ErrAlreadyDeclared):
		return helpers.JSONError(c, "RESULT_ALREADY_DECLARED")
	default:
		return helpers.JSONError(c, "SETTLEMENT_FAILED")
	}
}
