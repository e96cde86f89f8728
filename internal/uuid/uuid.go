// Package uuid wraps google/uuid with the binding interface gin needs for
// UUIDs in URI and query parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is the ID type used for all resources.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID. It marks an unset reference.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns a random UUID in its string form.
func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam parses a UUID from a request parameter. An empty parameter
// is the nil UUID, not an error, so that optional filters can be left unset.
func (u *UUID) UnmarshalParam(param string) error {
	if param == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(param)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
