// Package unread decides which messages in a listing are unread relative
// to a last-read watermark.
package unread

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/catchup-chat/catchup/internal/chat"
)

// previewLimit caps summary previews, counted in characters.
const previewLimit = 100

// Classify returns the messages created strictly after lastRead,
// preserving input order. Messages without a creation time are excluded;
// messages whose creation time fails to parse are excluded with a warning.
// Given the same inputs the result is always the same.
func Classify(msgs []chat.Message, lastRead time.Time, logger zerolog.Logger) []chat.Message {
	unread := make([]chat.Message, 0, len(msgs))
	for _, msg := range msgs {
		if msg.CreateTime == "" {
			continue
		}
		created, err := chat.ParseTimestamp(msg.CreateTime)
		if err != nil {
			logger.Warn().
				Str("message", msg.Name).
				Str("createTime", msg.CreateTime).
				Msg("skipping message with unparsable timestamp")
			continue
		}
		if created.After(lastRead) {
			unread = append(unread, msg)
		}
	}
	return unread
}

// Watermark resolves a space's last-read timestamp: an absent value means
// the space was never read, so the earliest representable instant is used
// and every message counts as unread.
func Watermark(lastReadTime string) (time.Time, error) {
	if lastReadTime == "" {
		lastReadTime = chat.EpochZero
	}
	return chat.ParseTimestamp(lastReadTime)
}

// Preview shortens message text for summary records: at most 100
// characters, with an ellipsis marker when truncated.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
