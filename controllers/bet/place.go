package bet

import (
	"fmt"
	"time"

	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var validate = validator.New()

type PlaceBetRequest struct {
	UserCode string  `json:"user_code" validate:"required"`
	MarketID uint    `json:"market_id" validate:"required"`
	Family   string  `json:"family" validate:"required,oneof=single jodi panna half_sangam full_sangam"`
	Pattern  string  `json:"pattern" validate:"required,max=8"`
	Side     string  `json:"side" validate:"omitempty,oneof=open close"`
	Stake    float64 `json:"stake" validate:"required,gt=0"`
	RunsAt   string  `json:"runs_at" validate:"omitempty,datetime=2006-01-02"`
}

func (r *PlaceBetRequest) Validate() error {
	return validate.Struct(r)
}

// bettingClosed applies the market close time minus the cutoff window.
func bettingClosed(m *models.Market, now time.Time) bool {
	ct, err := time.Parse("15:04", m.CloseTime)
	if err != nil {
		return false
	}
	y, mo, d := now.Date()
	closeAt := time.Date(y, mo, d, ct.Hour(), ct.Minute(), 0, 0, now.Location()).
		Add(-time.Duration(m.CutoffSeconds) * time.Second)
	return now.After(closeAt)
}

func PlaceBet(c *fiber.Ctx) error {
	var req PlaceBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := req.Validate(); err != nil {
		return helpers.JSONError(c, "INVALID_BET_FIELDS")
	}

	if services.Classify(req.Family, req.Pattern) == services.KindInvalid {
		return helpers.JSONError(c, "INVALID_PATTERN_FOR_FAMILY")
	}

	side := req.Side
	if side == "" {
		side = models.BetSideOpen
	}

	var runsAt *time.Time
	if req.RunsAt != "" {
		t, err := time.Parse("2006-01-02", req.RunsAt)
		if err != nil {
			return helpers.JSONError(c, "INVALID_RUNS_AT")
		}
		runsAt = &t
	}

	var market models.Market
	if err := database.DB.Where("id = ? AND is_active = true", req.MarketID).First(&market).Error; err != nil {
		return helpers.JSONError(c, "MARKET_NOT_FOUND")
	}
	// Deferred bets target a later round, so today's cutoff does not
	// apply to them.
	if runsAt == nil && bettingClosed(&market, time.Now()) {
		return helpers.JSONError(c, "MARKET_CLOSED_FOR_BETTING")
	}

	var placed models.Bet
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_code = ? AND is_active = true", req.UserCode).
			First(&user).Error; err != nil {
			return fmt.Errorf("USER_NOT_FOUND")
		}
		if user.Balance < req.Stake {
			return fmt.Errorf("INSUFFICIENT_BALANCE")
		}

		before := user.Balance
		after := helpers.FormatFloat(before-req.Stake, 2)
		if err := tx.Model(&user).Update("balance", after).Error; err != nil {
			return err
		}

		placed = models.Bet{
			UserID:   user.ID,
			UserCode: user.UserCode,
			MarketID: market.ID,
			Family:   req.Family,
			Pattern:  req.Pattern,
			Side:     side,
			Stake:    req.Stake,
			Status:   models.BetStatusPending,
			RunsAt:   runsAt,
		}
		if err := tx.Create(&placed).Error; err != nil {
			return err
		}

		return tx.Create(&models.LedgerEntry{
			UserID:        user.ID,
			UserCode:      user.UserCode,
			BetID:         placed.ID,
			TrxType:       models.LedgerTypeStake,
			Amount:        req.Stake,
			BalanceBefore: before,
			BalanceAfter:  after,
			Note:          fmt.Sprintf("Stake %s %s on %s", req.Family, req.Pattern, market.Name),
			RefID:         uuid.New().String(),
		}).Error
	})
	if err != nil {
		switch err.Error() {
		case "USER_NOT_FOUND", "INSUFFICIENT_BALANCE":
			return helpers.JSONError(c, err.Error())
		}
		return helpers.JSONError(c, "FAILED_TO_PLACE_BET")
	}

	return helpers.JSONSuccess(c, "Bet placed successfully", fiber.Map{
		"bet_id":  placed.ID,
		"market":  market.Name,
		"family":  placed.Family,
		"pattern": placed.Pattern,
		"side":    placed.Side,
		"stake":   placed.Stake,
		"status":  placed.Status,
	})
}
