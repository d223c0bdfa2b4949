package ids

import (
	"crypto/sha256"
	"encoding/base32"
	"strconv"
	"time"

	internalstrings "github.com/amonks/ktra/internal/strings"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generate derives a lowercase base32 ID from a seed and a timestamp.
// The same seed and timestamp always yield the same ID.
func Generate(seed string, at time.Time, length int) string {
	if length <= 0 {
		return ""
	}
	hash := sha256.Sum256([]byte(seed + "\x00" + at.UTC().Format(time.RFC3339Nano)))
	encoded := idEncoding.EncodeToString(hash[:])
	if length > len(encoded) {
		length = len(encoded)
	}
	return internalstrings.NormalizeLower(encoded[:length])
}

// GenerateUnique is Generate, retried with a numbered seed until taken
// reports the ID as free.
func GenerateUnique(seed string, at time.Time, length int, taken func(string) bool) string {
	id := Generate(seed, at, length)
	for attempt := 1; taken(id); attempt++ {
		id = Generate(seed+"#"+strconv.Itoa(attempt), at, length)
	}
	return id
}
