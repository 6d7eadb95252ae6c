package jobs

import (
	"os"

	"matka/database"
	"matka/models"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// StartResetScheduler clears declared numbers at the daily boundary so
// every market starts its next round under the same identity.
func StartResetScheduler() {
	spec := os.Getenv("RESET_CRON")
	if spec == "" {
		spec = "0 0 * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, ResetMarketNumbers); err != nil {
		log.WithError(err).Fatal("❌ Invalid RESET_CRON expression")
	}
	c.Start()
	log.WithField("cron", spec).Println("✅ Daily market reset scheduled")
}

func ResetMarketNumbers() {
	res := database.DB.Model(&models.Market{}).
		Where("opening_number IS NOT NULL OR closing_number IS NOT NULL").
		Updates(map[string]any{"opening_number": nil, "closing_number": nil})

	if res.Error != nil {
		log.WithError(res.Error).Error("❌ Failed to reset market numbers")
		return
	}
	log.WithField("markets", res.RowsAffected).Info("✅ Market numbers cleared for new round")
}
