package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Row code prefixes. Every entity key is 6 characters: a 2-letter prefix
// plus the first 4 characters of a fresh UUID. Uniqueness is enforced by
// retry-until-unique at the repository layer.
const (
	UserCodePrefix           = "US"
	TripCodePrefix           = "TR"
	PlaceCodePrefix          = "PL"
	BookingCodePrefix        = "BK"
	NotificationCodePrefix   = "NT"
	ReviewCodePrefix         = "RV"
	RecommendationCodePrefix = "AI"
	TripPlaceCodePrefix      = "DT"
)

func GenerateCode(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + strings.ToUpper(raw[:4])
}
