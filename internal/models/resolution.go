package models

import (
	"github.com/doum4811/startbeyond-backend/internal/categories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveEffective reads a profile's categories and preferences and merges
// them with the built-in catalog into the effective category list.
//
// Every loader and every mutation that references a category code calls
// this instead of re-implementing the merge. The list is recomputed from
// the current database state on every call, so an activation toggle is
// visible on the very next read.
func ResolveEffective(db *gorm.DB, profileID uuid.UUID) ([]categories.Effective, error) {
	var userCategories []UserCategory
	err := db.Where(&UserCategory{ProfileID: profileID}).Order("sort_order ASC, code ASC").Find(&userCategories).Error
	if err != nil {
		return nil, err
	}

	var preferences []CategoryPreference
	err = db.Where(&CategoryPreference{ProfileID: profileID}).Find(&preferences).Error
	if err != nil {
		return nil, err
	}

	overrides := make([]categories.Override, 0, len(userCategories))
	for _, userCategory := range userCategories {
		overrides = append(overrides, userCategory.Override())
	}

	prefs := make([]categories.Preference, 0, len(preferences))
	for _, preference := range preferences {
		prefs = append(prefs, preference.Preference())
	}

	return categories.Resolve(categories.Catalog, overrides, prefs), nil
}

// ValidateCategoryCode gates a mutation on the current effective category
// list. It returns ErrCategoryCodeNotActive when the code is missing,
// unknown or resolved as inactive.
func ValidateCategoryCode(db *gorm.DB, profileID uuid.UUID, code string) error {
	effective, err := ResolveEffective(db, profileID)
	if err != nil {
		return err
	}

	if !categories.IsValidActiveCode(code, effective) {
		return ErrCategoryCodeNotActive
	}

	return nil
}
