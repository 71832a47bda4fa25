package places

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	MinRadiusMeters = 100
	MaxRadiusMeters = 50000
)

// validTypes is the fixed allow-list of supported place type codes, in the
// order they are reported to callers.
var validTypes = []string{
	"pharmacy", "hospital", "clinic", "doctor",
	"dentist", "physiotherapist", "veterinary_care",
}

var placeIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
var sanitizeRegex = regexp.MustCompile(`[<>"';\\]`)

// ValidateSearchParams checks the three search parameters in order and
// reports the first violation. The radius arrives as the raw query string so
// parse failures produce their own message.
func ValidateSearchParams(location, placeType, radius string) (bool, string) {
	if len(strings.TrimSpace(location)) < 2 {
		return false, "location must be at least 2 characters"
	}
	if len(location) > 200 {
		return false, "location too long (maximum 200 characters)"
	}

	if !slices.Contains(validTypes, placeType) {
		return false, fmt.Sprintf("invalid place type, valid types are: %s", strings.Join(validTypes, ", "))
	}

	r, err := strconv.Atoi(radius)
	if err != nil {
		return false, "radius must be an integer"
	}
	if r < MinRadiusMeters {
		return false, fmt.Sprintf("minimum radius is %d meters", MinRadiusMeters)
	}
	if r > MaxRadiusMeters {
		return false, fmt.Sprintf("radius exceeds maximum of %d meters (50 km)", MaxRadiusMeters)
	}

	return true, ""
}

// ValidatePlaceID checks the shape of an opaque provider place id.
func ValidatePlaceID(placeID string) (bool, string) {
	if placeID == "" {
		return false, "place id is required"
	}
	if len(placeID) < 10 {
		return false, "invalid place id (too short)"
	}
	if len(placeID) > 200 {
		return false, "invalid place id (too long)"
	}
	if !placeIDRegex.MatchString(placeID) {
		return false, "place id contains invalid characters"
	}
	return true, ""
}

// ValidateCoordinates checks that a point is on the globe.
func ValidateCoordinates(lat, lng float64) (bool, string) {
	if lat < -90 || lat > 90 {
		return false, "latitude must be between -90 and 90 degrees"
	}
	if lng < -180 || lng > 180 {
		return false, "longitude must be between -180 and 180 degrees"
	}
	return true, ""
}

// SanitizeInput strips characters that could leak into downstream queries and
// collapses runs of whitespace to a single space.
func SanitizeInput(text string) string {
	text = sanitizeRegex.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// ValidTypes returns the allow-list of supported place type codes.
func ValidTypes() []string {
	return slices.Clone(validTypes)
}
