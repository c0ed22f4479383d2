package utils

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/request_models"
)

func TestLocalGeneratorDeterministic(t *testing.T) {
	gen := NewLocalGenerator()
	req := request_models.TripGenerateRequest{
		Departure:   "Hanoi",
		Destination: "Da Nang",
		People:      2,
		Days:        3,
		Money:       "500 USD",
		TravelStyle: "comfort",
		Interests:   []string{"food", "beaches"},
	}

	first, err := gen.GenerateTravelRecommendation(context.Background(), req)
	require.NoError(t, err)
	second, err := gen.GenerateTravelRecommendation(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestLocalGeneratorEmbedsRequest(t *testing.T) {
	gen := NewLocalGenerator()
	req := request_models.TripGenerateRequest{
		Departure:   "Hanoi",
		Destination: "Hue",
		People:      4,
		Days:        2,
		Money:       "300 USD",
		TravelStyle: "luxury",
		Interests:   []string{"history"},
	}

	out, err := gen.GenerateTravelRecommendation(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, out, "HANOI")
	assert.Contains(t, out, "HUE")
	assert.Contains(t, out, "300 USD")
	assert.Contains(t, out, "history")
	assert.Contains(t, out, "5-star")
	assert.Equal(t, 2, strings.Count(out, "Day "))
}

func TestLocalGeneratorStyles(t *testing.T) {
	gen := NewLocalGenerator()
	base := request_models.TripGenerateRequest{
		Departure:   "A",
		Destination: "B",
		People:      1,
		Days:        1,
	}

	tests := []struct {
		style string
		want  string
	}{
		{"luxury", "5-star resort"},
		{"comfort", "3-4 star hotel"},
		{"", "Homestay"},
		{"budget", "Homestay"},
	}

	for _, tt := range tests {
		req := base
		req.TravelStyle = tt.style
		out, err := gen.GenerateTravelRecommendation(context.Background(), req)
		require.NoError(t, err)
		assert.Contains(t, out, tt.want, "style %q", tt.style)
	}
}
