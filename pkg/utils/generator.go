package utils

import (
	"context"
	"fmt"
	"strings"

	"tripmate/internal/models/request_models"
)

// Generator produces a free-text travel recommendation for a trip request.
// Remote implementations may fail; LocalGenerator never does.
type Generator interface {
	GenerateTravelRecommendation(ctx context.Context, req request_models.TripGenerateRequest) (string, error)
	Name() string
}

// NewGenerator selects the remote provider at construction time.
func NewGenerator(provider, apiKey, model string) (Generator, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		return NewGeminiGenerator(apiKey, model)
	case "openai":
		return NewOpenAIGenerator(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// buildTravelPrompt renders the structured request into the instruction sent
// to the remote model.
func buildTravelPrompt(req request_models.TripGenerateRequest) string {
	var b strings.Builder

	b.WriteString("You are an experienced travel consultant. ")
	b.WriteString("Create a detailed, practical and engaging travel recommendation for the trip below.\n\n")

	b.WriteString("TRIP DETAILS:\n")
	fmt.Fprintf(&b, "- Departure: %s\n", req.Departure)
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Party size: %d\n", req.People)
	fmt.Fprintf(&b, "- Duration: %d day(s) (%s)\n", req.Days, req.Time)
	fmt.Fprintf(&b, "- Budget: %s\n", req.Money)
	fmt.Fprintf(&b, "- Travel style: %s\n", req.TravelStyle)
	fmt.Fprintf(&b, "- Interests: %s\n", joinOrNone(req.Interests))
	fmt.Fprintf(&b, "- Accommodation: %s\n", req.Accommodation)
	fmt.Fprintf(&b, "- Transportation: %s\n", req.Transportation)

	b.WriteString("\nRESPONSE REQUIREMENTS:\n")
	b.WriteString("1. A day-by-day itinerary with a concrete timeline\n")
	b.WriteString("2. Sights matched to the stated interests\n")
	b.WriteString("3. Local restaurants worth trying\n")
	b.WriteString("4. Accommodation options that fit the budget\n")
	b.WriteString("5. Estimated cost per category\n")
	b.WriteString("6. Money-saving tips and practical notes\n")
	b.WriteString("7. Evening activity suggestions\n")
	b.WriteString("\nUse clear sections and explain why each place was chosen.\n")

	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none given"
	}
	return strings.Join(items, ", ")
}
