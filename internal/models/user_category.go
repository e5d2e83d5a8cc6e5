package models

import (
	"regexp"
	"strings"

	"github.com/doum4811/startbeyond-backend/internal/categories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// codePattern is the convention for user-chosen category codes:
// uppercase letters, digits and underscores, at most 10 characters.
var codePattern = regexp.MustCompile(`^[A-Z0-9_]{1,10}$`)

// UserCategory is a category a profile defined for itself. An active
// UserCategory with the code of a built-in category supersedes the
// built-in one for that profile.
type UserCategory struct {
	DefaultModel
	ProfileID uuid.UUID `json:"profileId" gorm:"uniqueIndex:user_category_profile_code" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Code      string    `json:"code" gorm:"uniqueIndex:user_category_profile_code" example:"MY_STUDY"`                                  // Unique code per profile
	Label     string    `json:"label" example:"Japanese study"`                                                                         // Display name
	Icon      string    `json:"icon" example:"🇯🇵" default:""`                                                                           // Display glyph
	Color     string    `json:"color" example:"#4caf50" default:""`                                                                     // Optional display hint
	IsActive  bool      `json:"isActive" example:"true"`                                                                                // Whether the category may be used for new entries
	SortOrder int       `json:"sortOrder" example:"3" default:"0"`                                                                      // Ordering hint, 0 means unset
}

// NormalizeCode uppercases a user-chosen category code and validates it
// against the code convention.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	if !codePattern.MatchString(code) {
		return "", ErrCategoryCodeInvalid
	}

	return code, nil
}

// BeforeSave normalizes and validates the code. Partial updates do not
// pass through here with the new code, callers normalize those themselves.
func (u *UserCategory) BeforeSave(_ *gorm.DB) error {
	code, err := NormalizeCode(u.Code)
	if err != nil {
		return err
	}

	u.Code = code
	return nil
}

// Override returns the category inputs for the resolver.
func (u UserCategory) Override() categories.Override {
	return categories.Override{
		Code:      u.Code,
		Label:     u.Label,
		Icon:      u.Icon,
		Color:     u.Color,
		IsActive:  u.IsActive,
		SortOrder: u.SortOrder,
	}
}
