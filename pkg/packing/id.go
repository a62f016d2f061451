package packing

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a fresh opaque identifier with the given prefix,
// e.g. "item_9f2c4a1b8d3e". Prefixes keep persisted data readable.
func NewID(prefix string) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a fixed id rather than panicking in a UI-facing path.
		return prefix + "_000000000000"
	}
	return prefix + "_" + hex.EncodeToString(buf)
}
