package services

import (
	"regexp"
	"strings"

	"matka/models"
)

// BetKind is the payout sub-family a bet resolves under. It is decided
// once per bet and shared between settlement and preview so the two
// can never disagree on a rate.
type BetKind string

const (
	KindSingle      BetKind = "single"
	KindJodi        BetKind = "jodi"
	KindSinglePatti BetKind = "singlePatti"
	KindDoublePatti BetKind = "doublePatti"
	KindTriplePatti BetKind = "triplePatti"
	KindHalfSangamA BetKind = "halfSangamA" // pana-ank: 3 digits, dash, 1 digit
	KindHalfSangamB BetKind = "halfSangamB" // ank-pana: 1 digit, dash, 3 digits
	KindFullSangam  BetKind = "fullSangam"

	// KindInvalid marks a stored pattern that fails its family's shape
	// check. Such bets never win but still settle as lost, so one bad
	// row cannot block the batch.
	KindInvalid BetKind = "invalid"
)

var (
	singleShape      = regexp.MustCompile(`^\d$`)
	jodiShape        = regexp.MustCompile(`^\d{2}$`)
	halfSangamAShape = regexp.MustCompile(`^\d{3}-\d$`)
	halfSangamBShape = regexp.MustCompile(`^\d-\d{3}$`)
	fullSangamShape  = regexp.MustCompile(`^\d{3}-\d{3}$`)
)

// Classify maps a bet family and raw pattern to its payout kind.
// Pure; depends on the pattern alone.
func Classify(family, pattern string) BetKind {
	switch family {
	case models.BetFamilySingle:
		if singleShape.MatchString(pattern) {
			return KindSingle
		}
	case models.BetFamilyJodi:
		if jodiShape.MatchString(pattern) {
			return KindJodi
		}
	case models.BetFamilyPanna:
		if models.ResultNumberPattern.MatchString(pattern) {
			return classifyPanna(pattern)
		}
	case models.BetFamilyHalfSangam:
		// One side must be exactly 3 digits and the other exactly 1,
		// so a pattern can never satisfy both formats.
		if halfSangamAShape.MatchString(pattern) {
			return KindHalfSangamA
		}
		if halfSangamBShape.MatchString(pattern) {
			return KindHalfSangamB
		}
	case models.BetFamilyFullSangam:
		if fullSangamShape.MatchString(pattern) {
			return KindFullSangam
		}
	}
	return KindInvalid
}

func classifyPanna(p string) BetKind {
	a, b, c := p[0], p[1], p[2]
	switch {
	case a == b && b == c:
		return KindTriplePatti
	case a == b || b == c || a == c:
		return KindDoublePatti
	default:
		return KindSinglePatti
	}
}

// RateFamily is the rate-table key a kind pays under. Both half-sangam
// formats share one rate.
func (k BetKind) RateFamily() string {
	switch k {
	case KindHalfSangamA, KindHalfSangamB:
		return models.RateFamilyHalfSangam
	case KindInvalid:
		// Never pays out, but keep a resolvable key so rate lookup is
		// total.
		return models.RateFamilySinglePatti
	default:
		return string(k)
	}
}

// splitPattern splits a sangam pattern into its two halves.
func splitPattern(pattern string) (string, string) {
	parts := strings.SplitN(pattern, "-", 2)
	if len(parts) != 2 {
		return pattern, ""
	}
	return parts[0], parts[1]
}
