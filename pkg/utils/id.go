package utils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID generates a globally unique opaque identifier. It prefers a random
// UUID; when the system entropy source is unavailable it falls back to a
// pseudo-random scheme so entity creation never fails.
func NewID() uuid.UUID {
	id, err := uuid.NewRandom()
	if err != nil {
		return pseudoRandomID()
	}
	return id
}

// pseudoRandomID builds a UUID from the timestamp and math/rand. Collisions
// are practically impossible within one account's lifetime, which is the only
// uniqueness guarantee callers rely on.
func pseudoRandomID() uuid.UUID {
	var b [16]byte
	now := time.Now().UnixNano()
	for i := 0; i < 8; i++ {
		b[i] = byte(now >> (8 * i))
	}
	r := rand.Uint64()
	for i := 0; i < 8; i++ {
		b[8+i] = byte(r >> (8 * i))
	}
	// Version 4, RFC 4122 variant
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return uuid.UUID(b)
}

// ParseID parses a string into a UUID
func ParseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
