package util

import (
	"strconv"
)

// ParseID converts a path parameter to an entity id; the bool reports whether
// the input was a valid positive integer.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
