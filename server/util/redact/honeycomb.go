package redact

import (
	"net/url"
	"regexp"

	"golang.org/x/exp/slices"
)

var sensitiveQueryParams = []string{
	"key",            // the Google Maps API key
	"photoreference", // opaque, but ties events to a specific place photo
	"location",       // the user's free-text search location
	"reference",      // photo reference as sent to us
}

var geocodePathRegex = regexp.MustCompile(`^/maps/api/geocode/.+$`)

func redactQuery(query string) string {
	values, err := url.ParseQuery(query)
	if err != nil {
		return "[parse error redacted for safety]"
	}
	newValues := url.Values{}
	for k, v := range values {
		if slices.Contains(sensitiveQueryParams, k) {
			newValues[k] = []string{"redacted"}
		} else {
			newValues[k] = v
		}
	}
	return newValues.Encode()
}

func cleanPath(path string) string {
	if geocodePathRegex.MatchString(path) {
		return "/maps/api/geocode/[query]"
	}
	return path
}

func cleanUrl(u string) string {
	parsedUrl, err := url.Parse(u)
	if err != nil {
		return "[parse error redacted for safety]"
	}
	parsedUrl.Path = cleanPath(parsedUrl.Path)
	parsedUrl.RawQuery = redactQuery(parsedUrl.RawQuery)
	return parsedUrl.String()
}

// CleanHoneycomb strips credentials and search locations out of events
// before they leave the process.
func CleanHoneycomb(data map[string]interface{}) {
	if query, ok := data["request.query"]; ok {
		if queryStr, ok := query.(string); ok {
			data["request.query"] = redactQuery(queryStr)
		}
	}
	if path, ok := data["request.path"]; ok {
		if pathStr, ok := path.(string); ok {
			data["request.path"] = cleanPath(pathStr)
		}
	}
	if u, ok := data["request.url"]; ok {
		if urlStr, ok := u.(string); ok {
			data["request.url"] = cleanUrl(urlStr)
		}
	}
}
