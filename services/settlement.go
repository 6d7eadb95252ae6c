package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidNumber      = errors.New("result number must be exactly three digits")
	ErrMarketNotFound     = errors.New("market not found")
	ErrOpeningNotDeclared = errors.New("opening number has not been declared")
	ErrAlreadyDeclared    = errors.New("result number already declared for this round")
)

// SettlementSummary reports what a settlement pass did.
type SettlementSummary struct {
	MarketID    uint    `json:"market_id"`
	Phase       string  `json:"phase"`
	Number      string  `json:"number"`
	Resolved    int     `json:"resolved"`
	Winners     int     `json:"winners"`
	TotalPayout float64 `json:"total_payout"`
}

// pendingBetsScope is the single fetch filter shared by settlement and
// preview: pending bets of the market whose deferred date, if any, is
// today or earlier. Keeping one scope is what stops the two from
// diverging on deferred bets.
func pendingBetsScope(marketID uint, now time.Time) func(*gorm.DB) *gorm.DB {
	y, m, d := now.Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, 0, now.Location())
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("market_id = ?", marketID).
			Where("status = ?", models.BetStatusPending).
			Where("runs_at IS NULL OR runs_at <= ?", endOfDay)
	}
}

// SettleOpening declares the opening number and resolves every pending
// single and panna bet of the market. Jodi and sangam bets stay
// pending until the close.
func SettleOpening(marketID uint, openingNumber string) (*SettlementSummary, error) {
	if !models.ResultNumberPattern.MatchString(openingNumber) {
		return nil, ErrInvalidNumber
	}

	var market models.Market
	if err := database.DB.First(&market, marketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarketNotFound
		}
		return nil, err
	}
	if market.HasOpening() {
		return nil, ErrAlreadyDeclared
	}

	if err := database.DB.Model(&market).Update("opening_number", openingNumber).Error; err != nil {
		return nil, err
	}

	rates := LoadRateTable(database.DB)

	var bets []models.Bet
	if err := database.DB.Scopes(pendingBetsScope(market.ID, time.Now())).Find(&bets).Error; err != nil {
		return nil, err
	}

	summary := &SettlementSummary{MarketID: market.ID, Phase: "open", Number: openingNumber}
	for i := range bets {
		b := &bets[i]
		if !isOpenFamily(b.Family) {
			continue
		}
		res := resolveOpenBet(b, openingNumber, rates)
		if err := persistResolution(b, res, "open", openingNumber); err != nil {
			log.WithError(err).WithField("bet_id", b.ID).Error("failed to persist bet resolution")
			continue
		}
		summary.Resolved++
		if res.Won {
			summary.Winners++
			summary.TotalPayout = helpers.FormatFloat(summary.TotalPayout+res.Payout, 2)
		}
	}

	log.WithFields(log.Fields{
		"market_id": market.ID,
		"number":    openingNumber,
		"resolved":  summary.Resolved,
		"winners":   summary.Winners,
		"payout":    summary.TotalPayout,
	}).Info("opening result settled")

	return summary, nil
}

// SettleClosing declares the closing number and resolves every pending
// jodi, half-sangam and full-sangam bet. Any single/panna bet still
// pending (an open pass that was skipped or died mid-batch) is swept
// up here against the opening number.
func SettleClosing(marketID uint, closingNumber string) (*SettlementSummary, error) {
	if !models.ResultNumberPattern.MatchString(closingNumber) {
		return nil, ErrInvalidNumber
	}

	var market models.Market
	if err := database.DB.First(&market, marketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarketNotFound
		}
		return nil, err
	}
	if !market.HasOpening() {
		return nil, ErrOpeningNotDeclared
	}
	if market.HasClosing() {
		return nil, ErrAlreadyDeclared
	}
	opening := *market.OpeningNumber

	if err := database.DB.Model(&market).Update("closing_number", closingNumber).Error; err != nil {
		return nil, err
	}

	rates := LoadRateTable(database.DB)

	var bets []models.Bet
	if err := database.DB.Scopes(pendingBetsScope(market.ID, time.Now())).Find(&bets).Error; err != nil {
		return nil, err
	}

	summary := &SettlementSummary{MarketID: market.ID, Phase: "close", Number: closingNumber}
	for i := range bets {
		b := &bets[i]
		var res Resolution
		switch {
		case isCloseFamily(b.Family):
			res = resolveCloseBet(b, opening, closingNumber, rates)
		case isOpenFamily(b.Family):
			res = resolveOpenBet(b, opening, rates)
		default:
			continue
		}
		if err := persistResolution(b, res, "close", closingNumber); err != nil {
			log.WithError(err).WithField("bet_id", b.ID).Error("failed to persist bet resolution")
			continue
		}
		summary.Resolved++
		if res.Won {
			summary.Winners++
			summary.TotalPayout = helpers.FormatFloat(summary.TotalPayout+res.Payout, 2)
		}
	}

	log.WithFields(log.Fields{
		"market_id": market.ID,
		"number":    closingNumber,
		"resolved":  summary.Resolved,
		"winners":   summary.Winners,
		"payout":    summary.TotalPayout,
	}).Info("closing result settled")

	return summary, nil
}

// persistResolution writes one bet's outcome. A win updates the bet,
// credits the wallet and appends the ledger entry in one transaction
// with the user row locked, so a crash can never leave a won bet
// without its credit. The status gate on pending plus the
// RowsAffected check make a re-run a no-op instead of a double pay.
func persistResolution(bet *models.Bet, res Resolution, phase, number string) error {
	info, _ := json.Marshal(map[string]any{
		"phase":     phase,
		"number":    number,
		"kind":      string(res.Kind),
		"settledAt": time.Now().Format(time.RFC3339),
	})

	if !res.Won {
		return database.DB.Model(bet).
			Where("id = ? AND status = ?", bet.ID, models.BetStatusPending).
			Updates(map[string]any{
				"status":      models.BetStatusLost,
				"payout":      0,
				"result_info": datatypes.JSON(info),
			}).Error
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		upd := tx.Model(bet).
			Where("id = ? AND status = ?", bet.ID, models.BetStatusPending).
			Updates(map[string]any{
				"status":      models.BetStatusWon,
				"payout":      res.Payout,
				"result_info": datatypes.JSON(info),
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			// Already resolved by an earlier pass.
			return nil
		}

		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, bet.UserID).Error; err != nil {
			return err
		}

		before := user.Balance
		after := helpers.FormatFloat(before+res.Payout, 2)
		if err := tx.Model(&user).Update("balance", after).Error; err != nil {
			return err
		}

		return tx.Create(&models.LedgerEntry{
			UserID:        user.ID,
			UserCode:      user.UserCode,
			BetID:         bet.ID,
			TrxType:       models.LedgerTypeWin,
			Amount:        res.Payout,
			BalanceBefore: before,
			BalanceAfter:  after,
			Note:          fmt.Sprintf("Win %s %s @ %s", bet.Family, bet.Pattern, number),
			RefID:         uuid.New().String(),
		}).Error
	})
}
