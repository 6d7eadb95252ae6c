package admin

import (
	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// GetRates returns the merged snapshot: stored overrides where valid,
// built-in defaults everywhere else. This is exactly what the next
// settlement pass will pay under.
func GetRates(c *fiber.Ctx) error {
	table := services.LoadRateTable(database.DB)
	return helpers.JSONSuccess(c, "Rates retrieved successfully", table.Snapshot())
}

type UpdateRatesRequest struct {
	Rates map[string]string `json:"rates"`
}

// UpdateRates upserts stored multipliers. Values are stored as given;
// anything unparseable or negative is simply ignored at merge time, so
// a bad write can degrade a rate to its default but never block
// settlement.
func UpdateRates(c *fiber.Ctx) error {
	var req UpdateRatesRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if len(req.Rates) == 0 {
		return helpers.JSONError(c, "RATES_REQUIRED")
	}

	for family, multiplier := range req.Rates {
		rate := models.Rate{Family: family, Multiplier: multiplier}
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "family"}},
			DoUpdates: clause.AssignmentColumns([]string{"multiplier", "updated_at"}),
		}).Create(&rate).Error; err != nil {
			return helpers.JSONError(c, "FAILED_TO_UPDATE_RATES")
		}
	}

	table := services.LoadRateTable(database.DB)
	return helpers.JSONSuccess(c, "Rates updated successfully", table.Snapshot())
}
