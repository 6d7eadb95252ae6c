package services

import (
	"fmt"
	"strconv"

	"matka/models"
)

// DigitSum returns the sum of the three decimal digits of n. The input
// must already match models.ResultNumberPattern.
func DigitSum(n string) int {
	sum := 0
	for _, ch := range n {
		sum += int(ch - '0')
	}
	return sum
}

// LastDigit is the "ank" of a declared number: digit sum mod 10. Every
// single and jodi bet resolves against this digit.
func LastDigit(n string) int {
	return DigitSum(n) % 10
}

// MiddleDigits builds the two-digit jodi string from the declared
// numbers. The closing half stays a wildcard until the closing number
// is declared. Returns nil when the opening number itself is invalid.
func MiddleDigits(opening, closing string) *string {
	if !models.ResultNumberPattern.MatchString(opening) {
		return nil
	}
	out := strconv.Itoa(LastDigit(opening))
	if models.ResultNumberPattern.MatchString(closing) {
		out += strconv.Itoa(LastDigit(closing))
	} else {
		out += "*"
	}
	return &out
}

// DisplayResult renders the market result for listings. It is computed
// on every read; the open and close declarations change its inputs at
// different times during the round.
func DisplayResult(m *models.Market) string {
	opening, closing := "", ""
	if m.OpeningNumber != nil {
		opening = *m.OpeningNumber
	}
	if m.ClosingNumber != nil {
		closing = *m.ClosingNumber
	}
	openOK := models.ResultNumberPattern.MatchString(opening)
	closeOK := models.ResultNumberPattern.MatchString(closing)

	if m.Kind == models.MarketKindSingleDraw {
		if !openOK {
			return "*** - *"
		}
		return fmt.Sprintf("%s - %d", opening, LastDigit(opening))
	}

	switch {
	case !openOK:
		return "***-**-***"
	case !closeOK:
		return fmt.Sprintf("%s-%d*-***", opening, LastDigit(opening))
	default:
		return fmt.Sprintf("%s-%d%d-%s", opening, LastDigit(opening), LastDigit(closing), closing)
	}
}
