// Package v1 implements the v1 API.
package v1

import (
	"errors"
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errNotYours) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

var (
	// errNotYours is returned when a profile references a resource that
	// exists but belongs to someone else. The queries scope by profile,
	// so usually ErrResourceNotFound hides the existence of the resource;
	// this error is for shared resources like posts.
	errNotYours = errors.New("you can only change your own resources")

	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errMissingCredentials  = errors.New("username or email and password must be set")
	errWrongCredentials    = errors.New("no account matches these credentials")
	errRecipientRequired   = errors.New("the recipientId parameter must be set")
	errRecipientSelf       = errors.New("you cannot send a message to yourself")
	errStatsRange          = errors.New("the 'from' date must not be after the 'to' date")
)
