package datetime

import (
	"fmt"
	"strings"
	"time"

	"eventbot/internal/domain"
)

// Accepted input layouts. Bare layouts are read as UTC per the bot's fixed
// UTC convention; RFC 3339 inputs keep their own offset and are normalized.
var layouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Parse converts user input ("YYYY-MM-DD HH:MM" or RFC 3339) to a UTC instant.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.ErrInvalidDateTime
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.ErrInvalidDateTime
}

// FormatUTC renders an instant for plain-text contexts.
func FormatUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

// Mention renders Discord timestamp markup (style "F" = full date/time,
// "R" = relative), which the client displays in the viewer's timezone.
func Mention(t time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}
