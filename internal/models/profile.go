package models

// Profile is a registered user of the instance. All other resources are
// owned by exactly one profile.
type Profile struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex:profile_username" example:"taylor"`       // Unique login and display name
	Email        string `json:"email" gorm:"uniqueIndex:profile_email" example:"taylor@example.com"` // Unique email address
	PasswordHash string `json:"-"`                                                                   // bcrypt hash, never serialized
}
