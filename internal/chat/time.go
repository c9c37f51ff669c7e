package chat

import (
	"fmt"
	"time"
)

// TimestampFormat is the wire format for timestamps: ISO 8601 with
// millisecond precision and a literal UTC designator. The API accepts it
// in update payloads and emits compatible RFC 3339 values.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// EpochZero is the timestamp substituted for an absent last-read time: a
// space that was never read has every message unread.
const EpochZero = "1970-01-01T00:00:00.000Z"

// FormatTimestamp renders t in the wire format, in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// ParseTimestamp parses an RFC 3339 timestamp as produced by the API,
// with or without fractional seconds, with "Z" or a numeric offset.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
