package r4

import "github.com/google/uuid"

// NewRandomUuid returns a uuid holding a new random (version 4) UUID.
func NewRandomUuid() *Uuid {
	return Must(NewUuid("urn:uuid:" + uuid.NewString()))
}
