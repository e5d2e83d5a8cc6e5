package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Export returns all resources a profile owns, keyed by resource name.
// It backs the backup endpoint.
func Export(db *gorm.DB, profileID uuid.UUID) (map[string]json.RawMessage, error) {
	resources := make(map[string]json.RawMessage)

	exports := []struct {
		name  string
		query func(db *gorm.DB) (any, error)
	}{
		{"Profile", func(db *gorm.DB) (any, error) {
			var rows []Profile
			err := db.Where("id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"UserCategory", func(db *gorm.DB) (any, error) {
			var rows []UserCategory
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"CategoryPreference", func(db *gorm.DB) (any, error) {
			var rows []CategoryPreference
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"DailyRecord", func(db *gorm.DB) (any, error) {
			var rows []DailyRecord
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"DailyPlan", func(db *gorm.DB) (any, error) {
			var rows []DailyPlan
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"WeeklyTask", func(db *gorm.DB) (any, error) {
			var rows []WeeklyTask
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"MonthlyGoal", func(db *gorm.DB) (any, error) {
			var rows []MonthlyGoal
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"DailyNote", func(db *gorm.DB) (any, error) {
			var rows []DailyNote
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"Memo", func(db *gorm.DB) (any, error) {
			var rows []Memo
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"Post", func(db *gorm.DB) (any, error) {
			var rows []Post
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"PostReply", func(db *gorm.DB) (any, error) {
			var rows []PostReply
			err := db.Where("profile_id = ?", profileID).Find(&rows).Error
			return rows, err
		}},
		{"Message", func(db *gorm.DB) (any, error) {
			var rows []Message
			err := db.Where("sender_id = ? OR recipient_id = ?", profileID, profileID).Find(&rows).Error
			return rows, err
		}},
	}

	for _, export := range exports {
		rows, err := export.query(db)
		if err != nil {
			return nil, err
		}

		b, err := json.Marshal(rows)
		if err != nil {
			return nil, err
		}

		resources[export.name] = b
	}

	return resources, nil
}

// Wipe permanently deletes all resources a profile owns. The profile
// itself is kept so that the account stays usable.
//
// Replies by other profiles on the wiped profile's posts are deleted
// with the posts they belong to.
func Wipe(db *gorm.DB, profileID uuid.UUID) error {
	tx := db.Begin()

	deletions := []func(tx *gorm.DB) error{
		func(tx *gorm.DB) error {
			return tx.Unscoped().
				Where("profile_id = ? OR post_id IN (?)", profileID,
					tx.Session(&gorm.Session{NewDB: true}).Model(&Post{}).Select("id").Where("profile_id = ?", profileID)).
				Delete(&PostReply{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&Post{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("sender_id = ? OR recipient_id = ?", profileID, profileID).Delete(&Message{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&Memo{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&DailyNote{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&MonthlyGoal{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&WeeklyTask{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&DailyPlan{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&DailyRecord{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&CategoryPreference{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Unscoped().Where("profile_id = ?", profileID).Delete(&UserCategory{}).Error
		},
	}

	for _, deletion := range deletions {
		if err := deletion(tx); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}
