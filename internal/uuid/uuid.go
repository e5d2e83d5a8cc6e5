// Package uuid wraps google/uuid with gin parameter binding.
package uuid

import (
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that UUIDs
// can be bound from URI and query parameters.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return httputil.ErrInvalidUUID
	}

	*u = UUID{parsed}
	return nil
}
