package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Categories
	ErrCategoryCodeNotUnique   = errors.New("you already have a category with this code")
	ErrCategoryCodeInvalid     = errors.New("category codes must be 1 to 10 uppercase letters, digits or underscores")
	ErrCategoryCodeNotActive   = errors.New("invalid or missing active category code")
	ErrPreferenceCodeNotUnique = errors.New("a preference for this category already exists")
	ErrUnknownDefaultCategory  = errors.New("this code does not reference a built-in category")

	// Profiles
	ErrUsernameNotUnique = errors.New("this username is already taken")
	ErrEmailNotUnique    = errors.New("an account with this email address already exists")

	// Notes
	ErrNoteDateNotUnique = errors.New("a note for this date already exists")

	// Weekly tasks
	ErrInvalidWeekday = errors.New("the specified day is not a valid weekday")
)
