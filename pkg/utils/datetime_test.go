package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("25/12/2025 18:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 25, 18, 30, 0, 0, time.UTC), got)
}

func TestParseDateTimeRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "2025-12-25", "25/12/2025", "99/99/9999 00:00:00"} {
		_, err := ParseDateTime(in)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, in)
	}
}
