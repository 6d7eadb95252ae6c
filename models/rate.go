package models

import "gorm.io/gorm"

const (
	RateFamilySingle      = "single"
	RateFamilyJodi        = "jodi"
	RateFamilySinglePatti = "singlePatti"
	RateFamilyDoublePatti = "doublePatti"
	RateFamilyTriplePatti = "triplePatti"
	RateFamilyHalfSangam  = "halfSangam"
	RateFamilyFullSangam  = "fullSangam"
)

// Rate is a stored payout multiplier override. The multiplier is kept
// as text; anything that does not parse to a non-negative decimal is
// ignored in favour of the built-in default for the family.
type Rate struct {
	gorm.Model

	Family     string `gorm:"uniqueIndex;size:24" json:"family"`
	Multiplier string `gorm:"size:24" json:"multiplier"`
}
