package core

import "github.com/google/uuid"

// ID is an opaque record identifier. Identifiers are assigned by the
// document store on creation; the service never derives meaning from them.
type ID string

// NewID generates a fresh identifier for stores that delegate id
// generation to the application (the in-memory store does).
func NewID() ID {
	return ID(uuid.NewString())
}

func (id ID) String() string {
	return string(id)
}
