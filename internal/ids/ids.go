package ids

import "github.com/google/uuid"

// NewID returns a random (version 4) UUID in its canonical string form.
func NewID() string {
	return uuid.NewString()
}
