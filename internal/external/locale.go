package external

import "strings"

// AllowedCities is the fixed whitelist of recognized Indian cities.
// Order matters: NormalizeCity returns the first entry that matches,
// and that tie-break is observable behavior.
var AllowedCities = []string{
	"Mumbai",
	"Delhi",
	"Bangalore",
	"Hyderabad",
	"Chennai",
	"Pune",
	"Noida",
	"Gurugram",
	"Kolkata",
	"Ahmedabad",
	"Jaipur",
	"Indore",
}

// IsAllowedCity reports whether loc contains any whitelisted city name
// as a case-insensitive substring.
func IsAllowedCity(loc string) bool {
	if loc == "" {
		return false
	}
	normal := strings.ToLower(loc)
	for _, city := range AllowedCities {
		if strings.Contains(normal, strings.ToLower(city)) {
			return true
		}
	}
	return false
}

// IsIndiaLocation decides whether a free-text location counts as India:
// it contains "india", names a whitelisted city, or says remote+india.
func IsIndiaLocation(loc string) bool {
	if loc == "" {
		return false
	}
	normal := strings.ToLower(loc)
	if strings.Contains(normal, "india") {
		return true
	}
	if IsAllowedCity(loc) {
		return true
	}
	if strings.Contains(normal, "remote") && strings.Contains(normal, "india") {
		return true
	}
	return false
}

// NormalizeCity maps a free-text location to a whitelisted city name,
// "Remote India", or the generic "India". Unrecognized input is returned
// unchanged so callers never lose the original string.
func NormalizeCity(loc string) string {
	if loc == "" {
		return ""
	}
	normal := strings.ToLower(loc)
	for _, city := range AllowedCities {
		if strings.Contains(normal, strings.ToLower(city)) {
			return city
		}
	}
	if strings.Contains(normal, "remote") && strings.Contains(normal, "india") {
		return "Remote India"
	}
	if strings.Contains(normal, "india") {
		return "India"
	}
	return loc
}
