package utils

import "time"

// DateTimeLayout is the wire format for date lookups and itinerary times.
const DateTimeLayout = "02/01/2006 15:04:05"

// ParseDateTime parses the DD/MM/YYYY HH:MM:SS wire format.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}
