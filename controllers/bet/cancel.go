package bet

import (
	"fmt"

	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CancelBetRequest struct {
	BetID uint   `json:"bet_id" validate:"required"`
	Note  string `json:"note" validate:"omitempty,max=255"`
}

func (r *CancelBetRequest) Validate() error {
	return validate.Struct(r)
}

// CancelBet voids a pending bet and refunds the stake. Settled bets
// are terminal and cannot be cancelled.
func CancelBet(c *fiber.Ctx) error {
	var req CancelBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := req.Validate(); err != nil {
		return helpers.JSONError(c, "BET_ID_REQUIRED")
	}

	var cancelled models.Bet
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var b models.Bet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, req.BetID).Error; err != nil {
			return fmt.Errorf("BET_NOT_FOUND")
		}

		upd := tx.Model(&b).
			Where("id = ? AND status = ?", b.ID, models.BetStatusPending).
			Update("status", models.BetStatusCancelled)
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return fmt.Errorf("BET_ALREADY_RESOLVED")
		}

		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, b.UserID).Error; err != nil {
			return err
		}

		before := user.Balance
		after := helpers.FormatFloat(before+b.Stake, 2)
		if err := tx.Model(&user).Update("balance", after).Error; err != nil {
			return err
		}

		note := req.Note
		if note == "" {
			note = fmt.Sprintf("Refund %s %s", b.Family, b.Pattern)
		}

		if err := tx.Create(&models.LedgerEntry{
			UserID:        user.ID,
			UserCode:      user.UserCode,
			BetID:         b.ID,
			TrxType:       models.LedgerTypeRefund,
			Amount:        b.Stake,
			BalanceBefore: before,
			BalanceAfter:  after,
			Note:          note,
			RefID:         uuid.New().String(),
		}).Error; err != nil {
			return err
		}

		cancelled = b
		return nil
	})
	if err != nil {
		switch err.Error() {
		case "BET_NOT_FOUND", "BET_ALREADY_RESOLVED":
			return helpers.JSONError(c, err.Error())
		}
		return helpers.JSONError(c, "FAILED_TO_CANCEL_BET")
	}

	return helpers.JSONSuccess(c, "Bet cancelled and stake refunded", fiber.Map{
		"bet_id":   cancelled.ID,
		"refunded": cancelled.Stake,
	})
}
