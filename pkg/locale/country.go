package locale

import (
	"strings"
)

const (
	DefaultRegion   = "IN"
	DefaultTimezone = "Asia/Kolkata"
)

type Country struct {
	Code            string   // ISO 3166-1 alpha-2 country code (e.g., "IN", "AE")
	Name            string   // Human-readable country name
	CallingCode     string   // International dialling code without "+"
	DefaultTimezone string   // IANA timezone identifier (e.g., "Asia/Kolkata")
	TimeZones       []string // Zones that map back to this country
}

var (
	Countries = map[string]Country{
		"IN": {
			Code:            "IN",
			Name:            "India",
			CallingCode:     "91",
			DefaultTimezone: "Asia/Kolkata",
			TimeZones:       []string{"Asia/Kolkata", "Asia/Calcutta"},
		},
		"AE": {
			Code:            "AE",
			Name:            "United Arab Emirates",
			CallingCode:     "971",
			DefaultTimezone: "Asia/Dubai",
			TimeZones:       []string{"Asia/Dubai"},
		},
		"GB": {
			Code:            "GB",
			Name:            "United Kingdom",
			CallingCode:     "44",
			DefaultTimezone: "Europe/London",
			TimeZones:       []string{"Europe/London", "GB"},
		},
		"US": {
			Code:            "US",
			Name:            "United States",
			CallingCode:     "1",
			DefaultTimezone: "America/New_York",
			TimeZones:       []string{"America/New_York", "America/Los_Angeles", "US/Eastern", "US/Pacific"},
		},
	}
)

// DetectRegion maps a studio timezone to the region used to read national
// phone numbers. Unknown zones fall back to India.
func DetectRegion(tz string) string {
	for code, country := range Countries {
		for _, z := range country.TimeZones {
			if strings.EqualFold(tz, z) {
				return code
			}
		}
	}
	return DefaultRegion
}
