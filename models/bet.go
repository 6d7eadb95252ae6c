package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BetFamilySingle     = "single"
	BetFamilyJodi       = "jodi"
	BetFamilyPanna      = "panna"
	BetFamilyHalfSangam = "half_sangam"
	BetFamilyFullSangam = "full_sangam"
)

const (
	BetSideOpen  = "open"
	BetSideClose = "close"
)

const (
	BetStatusPending   = "pending"
	BetStatusWon       = "won"
	BetStatusLost      = "lost"
	BetStatusCancelled = "cancelled"
)

type Bet struct {
	gorm.Model

	UserID   uint   `gorm:"index" json:"user_id"`
	UserCode string `gorm:"size:32;index" json:"user_code"`
	MarketID uint   `gorm:"index" json:"market_id"`

	Family  string  `gorm:"size:16;index" json:"family"`
	Pattern string  `gorm:"size:16" json:"pattern"`
	Side    string  `gorm:"size:8;default:open" json:"side"`
	Stake   float64 `json:"stake"`

	Status string  `gorm:"size:16;index;default:pending" json:"status"`
	Payout float64 `gorm:"default:0" json:"payout"`

	// RunsAt defers the bet to a future round; it stays out of every
	// settlement pass until that date.
	RunsAt *time.Time `gorm:"index" json:"runs_at"`

	ResultInfo datatypes.JSON `gorm:"type:jsonb" json:"result_info"`
}
