package models

import (
	"github.com/doum4811/startbeyond-backend/internal/categories"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryPreference overrides the active state of a built-in category
// for one profile. A missing row means the built-in category is active.
// Rows are upserted when a profile toggles a built-in category and are
// never deleted.
type CategoryPreference struct {
	DefaultModel
	ProfileID uuid.UUID `json:"profileId" gorm:"uniqueIndex:category_preference_profile_code" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Code      string    `json:"code" gorm:"uniqueIndex:category_preference_profile_code" example:"EX"`                                        // Built-in category code
	IsActive  bool      `json:"isActive" example:"false"`                                                                                     // Resolved active state for the built-in category
}

// Preference returns the preference input for the resolver.
func (p CategoryPreference) Preference() categories.Preference {
	return categories.Preference{
		Code:     p.Code,
		IsActive: p.IsActive,
	}
}

// UpsertPreference creates the preference row for (profile, code) or
// updates its active state if it already exists.
func UpsertPreference(db *gorm.DB, profileID uuid.UUID, code string, isActive bool) (CategoryPreference, error) {
	preference := CategoryPreference{
		ProfileID: profileID,
		Code:      code,
		IsActive:  isActive,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_active", "updated_at"}),
	}).Create(&preference).Error
	if err != nil {
		return CategoryPreference{}, err
	}

	// Re-read into a fresh struct so that the returned row carries the
	// actual ID and timestamps after the upsert hit an existing row.
	// preference itself is unusable as the destination here: Create has
	// stamped a new primary key into it, which First would add to the
	// conditions.
	var row CategoryPreference
	err = db.Where(&CategoryPreference{ProfileID: profileID, Code: code}).First(&row).Error
	if err != nil {
		return CategoryPreference{}, err
	}

	return row, nil
}
