package services

import (
	"errors"
	"time"

	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PreviewResult projects a settlement pass without committing it.
type PreviewResult struct {
	TotalStaked          float64 `json:"total_staked"`
	TotalWinAmount       float64 `json:"total_win_amount"`
	DistinctParticipants int     `json:"distinct_participants"`
	Profit               float64 `json:"profit"`
}

// PreviewDeclareOpen reports the exposure of the open phase under a
// candidate opening number. Same fetch, same classification and same
// rate snapshot as SettleOpening; no writes anywhere.
func PreviewDeclareOpen(marketID uint, candidate string) (*PreviewResult, error) {
	_, bets, rates, err := fetchPreviewBatch(marketID)
	if err != nil {
		return nil, err
	}
	return projectOpen(bets, candidate, rates), nil
}

// PreviewDeclareClose is the close-phase counterpart. An invalid
// candidate still reports total stakes so exposure stays visible, with
// zero projected wins.
func PreviewDeclareClose(marketID uint, candidate string) (*PreviewResult, error) {
	market, bets, rates, err := fetchPreviewBatch(marketID)
	if err != nil {
		return nil, err
	}

	opening := ""
	if market.OpeningNumber != nil {
		opening = *market.OpeningNumber
	}
	return projectClose(bets, opening, candidate, rates), nil
}

func fetchPreviewBatch(marketID uint) (*models.Market, []models.Bet, *RateTable, error) {
	var market models.Market
	if err := database.DB.First(&market, marketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrMarketNotFound
		}
		return nil, nil, nil, err
	}

	var bets []models.Bet
	if err := database.DB.Scopes(pendingBetsScope(market.ID, time.Now())).Find(&bets).Error; err != nil {
		return nil, nil, nil, err
	}
	return &market, bets, LoadRateTable(database.DB), nil
}

func projectOpen(bets []models.Bet, candidate string, rates *RateTable) *PreviewResult {
	valid := models.ResultNumberPattern.MatchString(candidate)

	staked := decimal.Zero
	wins := decimal.Zero
	users := make(map[uint]struct{})

	for i := range bets {
		b := &bets[i]
		if !isOpenFamily(b.Family) {
			continue
		}
		staked = staked.Add(decimal.NewFromFloat(b.Stake))
		users[b.UserID] = struct{}{}
		if !valid {
			continue
		}
		if res := resolveOpenBet(b, candidate, rates); res.Won {
			wins = wins.Add(decimal.NewFromFloat(res.Payout))
		}
	}
	return buildPreview(staked, wins, len(users))
}

func projectClose(bets []models.Bet, opening, candidate string, rates *RateTable) *PreviewResult {
	valid := models.ResultNumberPattern.MatchString(candidate) &&
		models.ResultNumberPattern.MatchString(opening)

	staked := decimal.Zero
	wins := decimal.Zero
	users := make(map[uint]struct{})

	for i := range bets {
		b := &bets[i]
		if !isCloseFamily(b.Family) {
			continue
		}
		staked = staked.Add(decimal.NewFromFloat(b.Stake))
		users[b.UserID] = struct{}{}
		if !valid {
			continue
		}
		if res := resolveCloseBet(b, opening, candidate, rates); res.Won {
			wins = wins.Add(decimal.NewFromFloat(res.Payout))
		}
	}
	return buildPreview(staked, wins, len(users))
}

func buildPreview(staked, wins decimal.Decimal, participants int) *PreviewResult {
	totalStaked, _ := staked.Round(2).Float64()
	totalWins, _ := wins.Round(2).Float64()
	return &PreviewResult{
		TotalStaked:          totalStaked,
		TotalWinAmount:       totalWins,
		DistinctParticipants: participants,
		Profit:               helpers.FormatFloat(totalStaked-totalWins, 2),
	}
}
