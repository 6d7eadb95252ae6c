package services

import (
	"matka/models"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// defaultRates are the compiled-in payout multipliers. A settlement
// pass always has a usable rate: stored overrides that are missing,
// unparseable or negative fall back to these.
var defaultRates = map[string]float64{
	models.RateFamilySingle:      9.5,
	models.RateFamilyJodi:        95,
	models.RateFamilySinglePatti: 140,
	models.RateFamilyDoublePatti: 280,
	models.RateFamilyTriplePatti: 600,
	models.RateFamilyHalfSangam:  1000,
	models.RateFamilyFullSangam:  10000,
}

// RateTable is a merged snapshot of stored overrides on top of the
// defaults, taken once at the start of a settlement or preview pass.
type RateTable struct {
	rates map[string]float64
}

// LoadRateTable merges stored rates over the defaults. A failed read
// degrades to defaults only; settlement is never blocked by missing
// configuration.
func LoadRateTable(db *gorm.DB) *RateTable {
	var stored []models.Rate
	if err := db.Find(&stored).Error; err != nil {
		log.WithError(err).Warn("rate table read failed, using defaults")
		stored = nil
	}
	return mergeRates(stored)
}

func mergeRates(stored []models.Rate) *RateTable {
	merged := make(map[string]float64, len(defaultRates))
	for family, v := range defaultRates {
		merged[family] = v
	}
	for _, r := range stored {
		if _, known := merged[r.Family]; !known {
			continue
		}
		v, err := decimal.NewFromString(r.Multiplier)
		if err != nil || v.IsNegative() {
			continue
		}
		f, _ := v.Float64()
		merged[r.Family] = f
	}
	return &RateTable{rates: merged}
}

// For returns the multiplier a kind pays under.
func (t *RateTable) For(kind BetKind) float64 {
	if v, ok := t.rates[kind.RateFamily()]; ok {
		return v
	}
	return defaultRates[kind.RateFamily()]
}

// Snapshot exposes the merged table for the rate admin endpoint.
func (t *RateTable) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(t.rates))
	for family, v := range t.rates {
		out[family] = v
	}
	return out
}

// SeedDefaultRates writes the default table on first boot so operators
// have rows to edit. Existing rows are left alone.
func SeedDefaultRates(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Rate{}).Count(&count).Error; err != nil {
		log.WithError(err).Warn("rate table count failed, skipping seed")
		return
	}
	if count > 0 {
		return
	}
	for family, v := range defaultRates {
		rate := models.Rate{Family: family, Multiplier: decimal.NewFromFloat(v).String()}
		if err := db.Create(&rate).Error; err != nil {
			log.WithError(err).WithField("family", family).Warn("failed to seed rate")
		}
	}
	log.Println("✅ Seeded default payout rates")
}
