// Package identifier converts between the canonical hyphenated string
// form of a record identifier and the 16 raw bytes stored in the
// database. Decode(Encode(b)) == b for every valid 16-byte value.
package identifier

import (
	"github.com/google/uuid"

	"gamestore-backend/shared/utils/apperrors"
)

// ByteLength is the stored size of an identifier.
const ByteLength = 16

// New generates a random v4 identifier as raw bytes.
func New() []byte {
	id := uuid.New()
	return id[:]
}

// Encode renders 16 raw bytes as the canonical lowercase hyphenated
// 8-4-4-4-12 string.
func Encode(b []byte) (string, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", apperrors.ErrInvalidIdentifier
	}
	return id.String(), nil
}

// Decode parses a canonical identifier string into its 16 raw bytes.
// Hyphens are ignored; anything that is not exactly 16 bytes of hex
// fails with ErrInvalidIdentifier.
func Decode(s string) ([]byte, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, apperrors.ErrInvalidIdentifier
	}
	return id[:], nil
}
