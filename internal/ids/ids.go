// Package ids generates the opaque identifiers assigned to suggestions at
// creation time.
package ids

import "github.com/google/uuid"

// MaxLen is the storage bound on identifier length.
const MaxLen = 48

// New returns a random 128-bit identifier rendered as a 36-character string.
// Uniqueness is probabilistic, not coordinated; a collision surfaces as a
// primary-key violation at insert time and is treated as a server error.
func New() string {
	return uuid.NewString()
}
