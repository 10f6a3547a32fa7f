package sqlite

import (
	"time"
)

// FormatTimeForDB converts a time.Time to the epoch-millisecond integer form
// used by both tables. Millisecond precision matches the backup document
// format, so exported timestamps survive an import byte-for-byte.
func FormatTimeForDB(t time.Time) int64 {
	return t.UnixMilli()
}

// ParseTimeFromDB converts an epoch-millisecond value from the database back
// into a time.Time in the local timezone.
func ParseTimeFromDB(ms int64) time.Time {
	return time.UnixMilli(ms)
}
