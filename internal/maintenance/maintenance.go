// Package maintenance removes soft-deleted rows once they are older
// than the configured retention.
package maintenance

import (
	"os"
	"strconv"
	"time"

	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// defaultMaxAgeDays is the retention for soft-deleted rows when
// PRUNE_MAX_AGE_DAYS is not set.
const defaultMaxAgeDays = 30

// pruneSchedule is when the prune job runs.
const pruneSchedule = "0 3 * * *"

// MaxAge returns the configured retention for soft-deleted rows.
func MaxAge() time.Duration {
	days := defaultMaxAgeDays

	if value, ok := os.LookupEnv("PRUNE_MAX_AGE_DAYS"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			log.Warn().Str("PRUNE_MAX_AGE_DAYS", value).Msg("Maintenance: not a valid number of days, using default")
		} else {
			days = parsed
		}
	}

	return time.Duration(days) * 24 * time.Hour
}

// Prune permanently deletes all rows that were soft-deleted before the
// cutoff.
func Prune(db *gorm.DB, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)

	resources := []any{
		&models.PostReply{},
		&models.Post{},
		&models.Message{},
		&models.Memo{},
		&models.DailyNote{},
		&models.MonthlyGoal{},
		&models.WeeklyTask{},
		&models.DailyPlan{},
		&models.DailyRecord{},
		&models.UserCategory{},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range resources {
			result := tx.Unscoped().Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).Delete(model)
			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected > 0 {
				log.Info().Int64("rows", result.RowsAffected).Msgf("Maintenance: pruned %T", model)
			}
		}

		return nil
	})
}

// Start schedules the nightly prune job. The returned cron must be
// stopped on shutdown.
func Start(db *gorm.DB) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(pruneSchedule, func() {
		if err := Prune(db, MaxAge()); err != nil {
			log.Error().Err(err).Msg("Maintenance: prune failed")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
