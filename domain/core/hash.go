package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Short returns the first 12 hex characters, enough for log lines
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// NewRecordHash hashes records field by field. Fields are separated by the
// ASCII unit separator and records by the record separator.
func NewRecordHash(records [][]string) Hash {
	h := sha256.New()
	for _, record := range records {
		for i, field := range record {
			if i > 0 {
				h.Write([]byte{0x1f})
			}
			h.Write([]byte(field))
		}
		h.Write([]byte{0x1e})
	}
	return Hash(hex.EncodeToString(h.Sum(nil)))
}
