package services

import (
	"testing"

	"matka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userBet(userID uint, family, pattern string, stake float64) models.Bet {
	return models.Bet{
		UserID:  userID,
		Family:  family,
		Pattern: pattern,
		Stake:   stake,
		Status:  models.BetStatusPending,
	}
}

func TestProjectOpenTotals(t *testing.T) {
	rates := mergeRates(nil)
	bets := []models.Bet{
		userBet(1, models.BetFamilySingle, "6", 100), // wins 950
		userBet(1, models.BetFamilyPanna, "123", 50), // wins 7000
		userBet(2, models.BetFamilySingle, "5", 40),  // loses
		userBet(3, models.BetFamilyJodi, "65", 25),   // close family, excluded
	}

	p := projectOpen(bets, "123", rates)
	assert.Equal(t, 190.0, p.TotalStaked)
	assert.Equal(t, 7950.0, p.TotalWinAmount)
	assert.Equal(t, 2, p.DistinctParticipants)
	assert.Equal(t, -7760.0, p.Profit)
}

func TestProjectOpenMatchesSettlementDecisions(t *testing.T) {
	rates := mergeRates(nil)
	bets := []models.Bet{
		userBet(1, models.BetFamilySingle, "6", 100),
		userBet(2, models.BetFamilyPanna, "112", 50),
		userBet(3, models.BetFamilyPanna, "111", 50),
		userBet(4, models.BetFamilySingle, "0", 75),
	}

	// The projection must equal the sum of payouts the real open pass
	// would assign to the same batch.
	expected := 0.0
	for i := range bets {
		if res := resolveOpenBet(&bets[i], "112", rates); res.Won {
			expected += res.Payout
		}
	}

	p := projectOpen(bets, "112", rates)
	require.Equal(t, expected, p.TotalWinAmount)
}

func TestProjectCloseTotals(t *testing.T) {
	rates := mergeRates(nil)
	bets := []models.Bet{
		userBet(1, models.BetFamilyJodi, "65", 100),           // wins 9500
		userBet(2, models.BetFamilyFullSangam, "123-654", 50), // loses
	}

	p := projectClose(bets, "123", "456", rates)
	assert.Equal(t, 150.0, p.TotalStaked)
	assert.Equal(t, 9500.0, p.TotalWinAmount)
	assert.Equal(t, 2, p.DistinctParticipants)
	assert.Equal(t, -9350.0, p.Profit)
}

func TestProjectCloseSameParticipant(t *testing.T) {
	rates := mergeRates(nil)
	bets := []models.Bet{
		userBet(7, models.BetFamilyJodi, "65", 100),
		userBet(7, models.BetFamilyFullSangam, "123-654", 50),
	}

	p := projectClose(bets, "123", "456", rates)
	assert.Equal(t, 1, p.DistinctParticipants)
}

func TestProjectCloseInvalidCandidateStillReportsStakes(t *testing.T) {
	rates := mergeRates(nil)
	bets := []models.Bet{
		userBet(1, models.BetFamilyJodi, "65", 100),
		userBet(2, models.BetFamilyHalfSangam, "123-5", 50),
	}

	p := projectClose(bets, "123", "45", rates)
	assert.Equal(t, 150.0, p.TotalStaked)
	assert.Equal(t, 0.0, p.TotalWinAmount)
	assert.Equal(t, 150.0, p.Profit)
}

func TestProjectOpenIgnoresCloseOnlyFamilies(t *testing.T) {
	rates := mergeRates(nil)
	bets := []models.Bet{
		userBet(1, models.BetFamilyJodi, "65", 100),
		userBet(2, models.BetFamilyHalfSangam, "123-5", 50),
		userBet(3, models.BetFamilyFullSangam, "123-456", 25),
	}

	p := projectOpen(bets, "123", rates)
	assert.Equal(t, 0.0, p.TotalStaked)
	assert.Equal(t, 0.0, p.TotalWinAmount)
	assert.Equal(t, 0, p.DistinctParticipants)
}
