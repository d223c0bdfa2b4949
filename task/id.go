package task

import (
	"time"

	"github.com/amonks/ktra/internal/ids"
)

// GenerateID derives an 8-character base32 ID from a title and creation time.
func GenerateID(title string, createdAt time.Time) string {
	return ids.Generate(title, createdAt, ids.DefaultLength)
}

// newID generates an ID that this Store has never held, so IDs of tasks
// deleted since Open are not handed out again. Across processes, reuse is
// only avoided by the creation time differing.
func (s *Store) newID(title string, now time.Time) string {
	id := ids.GenerateUnique(title, now, ids.DefaultLength, func(id string) bool {
		return s.issued[id] || s.indexOf(id) >= 0
	})
	s.issued[id] = true
	return id
}
