package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	UserCode string  `gorm:"uniqueIndex;size:32" json:"user_code"`
	Balance  float64 `json:"balance"`
	Currency string  `gorm:"size:8;default:INR" json:"currency"`
	IsActive bool    `gorm:"default:true" json:"is_active"`

	Bets   []Bet         `gorm:"foreignKey:UserID"`
	Ledger []LedgerEntry `gorm:"foreignKey:UserID"`
}
