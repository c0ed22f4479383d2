package utils

import (
	"context"
	"fmt"
	"strings"

	"tripmate/internal/models/request_models"
)

// LocalGenerator is the deterministic fallback. Given the same request it
// renders the same template; it never fails and never returns empty output.
type LocalGenerator struct{}

func NewLocalGenerator() *LocalGenerator { return &LocalGenerator{} }

func (g *LocalGenerator) Name() string { return "local" }

func (g *LocalGenerator) GenerateTravelRecommendation(_ context.Context, req request_models.TripGenerateRequest) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "TRIP SUGGESTION: %s TO %s\n\n",
		strings.ToUpper(req.Departure), strings.ToUpper(req.Destination))

	b.WriteString("TRIP DETAILS:\n")
	fmt.Fprintf(&b, "- Party size: %d\n", req.People)
	fmt.Fprintf(&b, "- Duration: %d day(s)\n", req.Days)
	fmt.Fprintf(&b, "- Budget: %s\n", req.Money)
	fmt.Fprintf(&b, "- Travel style: %s\n", req.TravelStyle)
	fmt.Fprintf(&b, "- Interests: %s\n", joinOrNone(req.Interests))

	b.WriteString("\nWHERE TO STAY:\n")
	switch {
	case strings.EqualFold(req.TravelStyle, "luxury"):
		b.WriteString("- 5-star resort or upscale boutique hotel\n")
		b.WriteString("- Full spa and amenities, central location or a view\n")
	case strings.EqualFold(req.TravelStyle, "comfort"):
		b.WriteString("- 3-4 star hotel with full amenities\n")
		b.WriteString("- Close to the center and the main sights\n")
	default:
		b.WriteString("- Homestay or 2-3 star hotel\n")
		b.WriteString("- Near public transport, clean and safe\n")
	}
	if req.Accommodation != "" {
		fmt.Fprintf(&b, "- Requested type: %s\n", req.Accommodation)
	}

	b.WriteString("\nGETTING AROUND:\n")
	if req.Transportation != "" {
		fmt.Fprintf(&b, "- Preferred: %s\n", req.Transportation)
	}
	b.WriteString("- Book intercity transport ahead for better prices\n")

	b.WriteString("\nSUGGESTED PLAN:\n")
	for day := 1; day <= req.Days; day++ {
		fmt.Fprintf(&b, "Day %d: morning sightseeing, local lunch, afternoon activity matched to your interests, evening food street or riverside walk\n", day)
	}

	b.WriteString("\nTIPS:\n")
	b.WriteString("- Carry cash for markets and street food\n")
	b.WriteString("- Check the weather before outdoor plans\n")
	b.WriteString("- Keep copies of your documents\n")

	return b.String(), nil
}
