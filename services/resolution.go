package services

import (
	"strconv"

	"matka/helpers"
	"matka/models"
)

// Resolution is one bet's decided outcome under a declared number.
type Resolution struct {
	Kind   BetKind
	Won    bool
	Payout float64
}

// Families resolved per phase. single and panna settle against the
// opening number; the rest need both numbers and wait for the close.
func isOpenFamily(family string) bool {
	return family == models.BetFamilySingle || family == models.BetFamilyPanna
}

func isCloseFamily(family string) bool {
	switch family {
	case models.BetFamilyJodi, models.BetFamilyHalfSangam, models.BetFamilyFullSangam:
		return true
	}
	return false
}

// resolveOpenBet decides a single/panna bet against the opening number.
// Pure; both the settlement engine and the preview calculator call it,
// which is what keeps their outcomes identical.
func resolveOpenBet(b *models.Bet, opening string, rates *RateTable) Resolution {
	kind := Classify(b.Family, b.Pattern)

	switch kind {
	case KindSingle:
		if b.Pattern == strconv.Itoa(LastDigit(opening)) {
			return won(b, kind, rates)
		}
	case KindSinglePatti, KindDoublePatti, KindTriplePatti:
		if b.Pattern == opening {
			return won(b, kind, rates)
		}
	}
	return Resolution{Kind: kind}
}

// resolveCloseBet decides a jodi/half-sangam/full-sangam bet against
// the declared pair of numbers. Both numbers must be valid 3-digit
// strings by the time this runs.
func resolveCloseBet(b *models.Bet, opening, closing string, rates *RateTable) Resolution {
	kind := Classify(b.Family, b.Pattern)
	openAnk := strconv.Itoa(LastDigit(opening))
	closeAnk := strconv.Itoa(LastDigit(closing))

	switch kind {
	case KindJodi:
		if b.Pattern == openAnk+closeAnk {
			return won(b, kind, rates)
		}
	case KindHalfSangamA:
		pana, ank := splitPattern(b.Pattern)
		if pana == opening && ank == closeAnk {
			return won(b, kind, rates)
		}
	case KindHalfSangamB:
		ank, pana := splitPattern(b.Pattern)
		if ank == openAnk && pana == closing {
			return won(b, kind, rates)
		}
	case KindFullSangam:
		first, second := splitPattern(b.Pattern)
		if first == opening && second == closing {
			return won(b, kind, rates)
		}
	}
	return Resolution{Kind: kind}
}

func won(b *models.Bet, kind BetKind, rates *RateTable) Resolution {
	return Resolution{
		Kind:   kind,
		Won:    true,
		Payout: helpers.FormatFloat(b.Stake*rates.For(kind), 2),
	}
}
