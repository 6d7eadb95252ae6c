package models

import (
	"regexp"

	"gorm.io/gorm"
)

const (
	MarketKindStandard   = "standard"
	MarketKindSingleDraw = "single_draw"
)

// ResultNumberPattern is the only accepted shape for a declared number.
var ResultNumberPattern = regexp.MustCompile(`^\d{3}$`)

type Market struct {
	gorm.Model

	Name          string  `gorm:"uniqueIndex;size:64" json:"name"`
	Kind          string  `gorm:"size:16;default:standard" json:"kind"`
	OpenTime      string  `gorm:"size:8" json:"open_time"`
	CloseTime     string  `gorm:"size:8" json:"close_time"`
	CutoffSeconds int     `gorm:"default:0" json:"cutoff_seconds"`
	OpeningNumber *string `gorm:"size:3" json:"opening_number"`
	ClosingNumber *string `gorm:"size:3" json:"closing_number"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`

	Bets []Bet `gorm:"foreignKey:MarketID"`
}

func (m *Market) HasOpening() bool {
	return m.OpeningNumber != nil && ResultNumberPattern.MatchString(*m.OpeningNumber)
}

func (m *Market) HasClosing() bool {
	return m.ClosingNumber != nil && ResultNumberPattern.MatchString(*m.ClosingNumber)
}
