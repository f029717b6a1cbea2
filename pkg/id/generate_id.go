// Package id mints the identifiers used for reports, payouts, users and
// submissions.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns 32 lowercase hex characters, no separators. Every
// record key in the store has this shape.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
