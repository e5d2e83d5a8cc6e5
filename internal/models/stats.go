package models

import (
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryTotal is the aggregate of a profile's daily records for one
// category code over a date range.
type CategoryTotal struct {
	CategoryCode string
	Records      int64
	TotalMinutes int64
}

// CategoryTotals sums a profile's daily records per category code over
// the inclusive date range [from, to].
func CategoryTotals(db *gorm.DB, profileID uuid.UUID, from, to types.Date) ([]CategoryTotal, error) {
	var totals []CategoryTotal

	query := db.Model(&DailyRecord{}).
		Select("category_code, COUNT(*) AS records, COALESCE(SUM(duration_minutes), 0) AS total_minutes").
		Where("profile_id = ?", profileID).
		Group("category_code").
		Order("total_minutes DESC, category_code ASC")

	if !from.IsZero() {
		query = query.Where("date >= ?", from)
	}

	if !to.IsZero() {
		query = query.Where("date <= ?", to)
	}

	err := query.Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return totals, nil
}
