package precond

import (
	"strings"

	"github.com/google/uuid"
)

// NonNilUUID accepts any UUID except the nil UUID.
func NonNilUUID() Predicate[uuid.UUID] {
	return func(v uuid.UUID) bool {
		return v != uuid.Nil
	}
}

// UUIDVersion accepts UUIDs of the given version.
func UUIDVersion(version byte) Predicate[uuid.UUID] {
	return func(v uuid.UUID) bool {
		return byte(v.Version()) == version
	}
}

// ValidUUIDString accepts only the canonical hyphenated textual form of a
// UUID. Other forms uuid.Parse tolerates, such as the 32-digit hex string,
// are rejected.
func ValidUUIDString() Predicate[string] {
	return func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return false
		}
		if len(v) != 36 {
			return false
		}
		if v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	}
}
