package budget

import (
	"math/rand"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates an identifier for a single added item: the current Unix
// time in milliseconds, as a decimal string. Uniqueness is best-effort,
// matching the layout of identifiers already present in existing stores.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// NewBulkID generates an identifier for bulk-inserted items: the timestamp
// plus a 7-character random base36 suffix, so items created within the same
// millisecond do not collide.
func NewBulkID() string {
	suffix := make([]byte, 7)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return NewID() + string(suffix)
}
