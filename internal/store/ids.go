package store

import "github.com/google/uuid"

// newID returns a collision-resistant id with a readable prefix, e.g.
// "prod-4f9d...".
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
