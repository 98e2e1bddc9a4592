// Package id provides the validated identifier type used for every entity
// in the workout aggregate.
//
// An ID is an opaque string that is guaranteed to be a well-formed UUID when
// it was produced by New or Parse. It deliberately serializes as a bare JSON
// string so that identifiers survive the trip across the shell boundary
// unchanged; the flip side is that decoding an ID from untrusted JSON does
// NOT validate it. Every boundary that accepts external data must call
// Parse (or Validate) explicitly - see the import path in internal/app.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalid is wrapped by every error Parse returns.
var ErrInvalid = fmt.Errorf("invalid identifier")

// ID is a validated unique identifier.
//
// The zero value is empty and NOT valid; construct via New or Parse.
// Comparable with ==, usable as a map key.
type ID string

// New generates a random identifier. Always valid by construction.
func New() ID {
	return ID(uuid.NewString())
}

// Parse validates s as a UUID and returns it as an ID.
// The string is kept verbatim (case and formatting preserved) so that
// round-trips through the wire format are byte-identical.
func Parse(s string) (ID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
	}
	return ID(s), nil
}

// Validate reports whether the ID holds a well-formed UUID.
// Used to re-check identifiers that arrived via transparent deserialization.
func (id ID) Validate() error {
	_, err := Parse(string(id))
	return err
}

// String returns the underlying string.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the ID is empty.
func (id ID) IsZero() bool {
	return id == ""
}
