package models

import "gorm.io/gorm"

const (
	LedgerTypeStake  = "stake"
	LedgerTypeWin    = "win"
	LedgerTypeRefund = "refund"
)

// LedgerEntry is append-only. A user's balance is the running result of
// these entries; rows are never updated or deleted.
type LedgerEntry struct {
	gorm.Model

	UserID   uint   `gorm:"index" json:"user_id"`
	UserCode string `gorm:"size:32;index" json:"user_code"`
	BetID    uint   `gorm:"index" json:"bet_id"`

	TrxType       string  `gorm:"size:16" json:"trx_type"`
	Amount        float64 `json:"amount"`
	BalanceBefore float64 `json:"balance_before"`
	BalanceAfter  float64 `json:"balance_after"`
	Note          string  `gorm:"size:255" json:"note"`
	RefID         string  `gorm:"size:64" json:"ref_id"`
}
