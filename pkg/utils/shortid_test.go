package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"user", UserCodePrefix},
		{"trip", TripCodePrefix},
		{"place", PlaceCodePrefix},
		{"booking", BookingCodePrefix},
		{"notification", NotificationCodePrefix},
		{"review", ReviewCodePrefix},
		{"recommendation", RecommendationCodePrefix},
		{"itinerary", TripPlaceCodePrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := GenerateCode(tt.prefix)
			assert.Len(t, code, 6)
			assert.True(t, strings.HasPrefix(code, tt.prefix))
			assert.Equal(t, strings.ToUpper(code), code)
		})
	}
}

func TestGenerateCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateCode(UserCodePrefix)] = true
	}
	// 16^4 possible suffixes; 100 draws colliding down to a handful would
	// mean a broken source.
	assert.Greater(t, len(seen), 90)
}
