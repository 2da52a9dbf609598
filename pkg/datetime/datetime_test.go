package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbot/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"minute precision", "2030-01-01 20:00", time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)},
		{"second precision", "2030-01-01 20:00:30", time.Date(2030, 1, 1, 20, 0, 30, 0, time.UTC)},
		{"rfc3339 utc", "2030-01-01T20:00:00Z", time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)},
		{"rfc3339 offset normalized", "2030-01-01T22:00:00+02:00", time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2030-01-01 20:00  ", time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"tomorrow at noon",
		"2030-13-01 20:00",
		"01/01/2030 20:00",
		"2030-01-01",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, domain.ErrInvalidDateTime)
		})
	}
}

func TestFormatUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2030, 1, 1, 21, 0, 0, 0, loc)
	assert.Equal(t, "2030-01-01 20:00 UTC", FormatUTC(in))
}

func TestMention(t *testing.T) {
	at := time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "<t:1893528000:F>", Mention(at, "F"))
	assert.Equal(t, "<t:1893528000:R>", Mention(at, "R"))
}
