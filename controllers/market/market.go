package market

import (
	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateMarketRequest struct {
	Name          string `json:"name" validate:"required,max=64"`
	Kind          string `json:"kind" validate:"omitempty,oneof=standard single_draw"`
	OpenTime      string `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime     string `json:"close_time" validate:"required,datetime=15:04"`
	CutoffSeconds int    `json:"cutoff_seconds" validate:"omitempty,gte=0"`
}

func (r *CreateMarketRequest) Validate() error {
	return validate.Struct(r)
}

func CreateMarket(c *fiber.Ctx) error {
	var req CreateMarketRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := req.Validate(); err != nil {
		return helpers.JSONError(c, "INVALID_MARKET_FIELDS")
	}

	kind := req.Kind
	if kind == "" {
		kind = models.MarketKindStandard
	}

	var existing models.Market
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "MARKET_ALREADY_EXISTS")
	}

	market := models.Market{
		Name:          req.Name,
		Kind:          kind,
		OpenTime:      req.OpenTime,
		CloseTime:     req.CloseTime,
		CutoffSeconds: req.CutoffSeconds,
		IsActive:      true,
	}
	if err := database.DB.Create(&market).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_MARKET")
	}

	return helpers.JSONSuccess(c, "Market created successfully", fiber.Map{
		"market_id": market.ID,
		"name":      market.Name,
		"kind":      market.Kind,
	})
}

func ListMarkets(c *fiber.Ctx) error {
	var markets []models.Market
	if err := database.DB.Where("is_active = true").Order("name asc").Find(&markets).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_MARKETS")
	}

	out := make([]fiber.Map, 0, len(markets))
	for i := range markets {
		m := &markets[i]
		out = append(out, fiber.Map{
			"market_id":  m.ID,
			"name":       m.Name,
			"kind":       m.Kind,
			"open_time":  m.OpenTime,
			"close_time": m.CloseTime,
			"result":     services.DisplayResult(m),
		})
	}
	return helpers.JSONSuccess(c, "Markets retrieved successfully", out)
}
