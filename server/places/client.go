// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package places

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/honeycombio/beeline-go"
	"googlemaps.github.io/maps"
)

const photoEndpoint = "https://maps.googleapis.com/maps/api/place/photo"

// Unbounded blocking on the provider is the biggest availability risk here,
// so every outbound call is capped even if the caller's context isn't.
const requestTimeout = 10 * time.Second

// detailFields is the field mask requested from place-details lookups.
var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
	maps.PlaceDetailsFieldMaskOpeningHours,
	maps.PlaceDetailsFieldMaskWebsite,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskUserRatingsTotal,
	maps.PlaceDetailsFieldMaskReviews,
	maps.PlaceDetailsFieldMaskGeometry,
	maps.PlaceDetailsFieldMaskPhotos,
	maps.PlaceDetailsFieldMaskTypes,
	maps.PlaceDetailsFieldMaskPriceLevel,
	maps.PlaceDetailsFieldMaskPlaceID,
}

// Client wraps the Google Maps client with the operations this service
// needs. It is safe for concurrent use and should be constructed once and
// shared; nothing about it is per-request.
type Client struct {
	maps   *maps.Client
	apiKey string
}

func NewClient(apiKey string) (*Client, error) {
	mc, err := maps.NewClient(
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &Client{maps: mc, apiKey: apiKey}, nil
}

// Geocode resolves a free-text address to a SearchLocation. It returns
// ErrNotFound when the provider has no match.
func (c *Client) Geocode(ctx context.Context, address string) (*SearchLocation, error) {
	ctx, span := beeline.StartSpan(ctx, "places.geocode")
	defer span.Send()
	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		span.AddField("error", err)
		return nil, wrapProviderError("geocode", err)
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return &SearchLocation{
		Address: results[0].FormattedAddress,
		Lat:     results[0].Geometry.Location.Lat,
		Lng:     results[0].Geometry.Location.Lng,
	}, nil
}

// NearbySearch finds health places of the given type within radius meters of
// the location. An empty result list is valid, not an error.
func (c *Client) NearbySearch(ctx context.Context, location *SearchLocation, placeType string, radius int) ([]HealthPlace, error) {
	ctx, span := beeline.StartSpan(ctx, "places.nearby_search")
	defer span.Send()
	span.AddField("type", placeType)
	span.AddField("radius", radius)
	// A direct conversion rather than maps.ParsePlaceType: the allow-list
	// contains "clinic", which Google's published type table doesn't, and the
	// API accepts it anyway.
	resp, err := c.maps.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: location.Lat, Lng: location.Lng},
		Radius:   uint(radius),
		Type:     maps.PlaceType(placeType),
	})
	if err != nil {
		// No matches inside the radius is a valid, empty result.
		if wrapped := wrapProviderError("nearby search", err); wrapped != ErrNotFound {
			span.AddField("error", err)
			return nil, wrapped
		}
		return []HealthPlace{}, nil
	}
	return NormalizeSearchResults(resp.Results), nil
}

// PlaceDetails fetches the detailed record for a place id, limited to
// detailFields. It returns ErrNotFound when the id doesn't resolve.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*DetailedHealthPlace, error) {
	ctx, span := beeline.StartSpan(ctx, "places.details")
	defer span.Send()
	result, err := c.maps.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  detailFields,
	})
	if err != nil {
		span.AddField("error", err)
		return nil, wrapProviderError("place details", err)
	}
	// The field mask includes place_id, so a blank record means the provider
	// had nothing for this id.
	if result.PlaceID == "" && result.Name == "" {
		return nil, ErrNotFound
	}
	detailed := FromDetailsResult(result)
	if detailed.PlaceID == "" {
		detailed.PlaceID = placeID
	}
	return &detailed, nil
}

// PhotoURL builds the provider's photo-fetch URL for a photo reference. Pure
// string formatting; no network call is made.
func (c *Client) PhotoURL(photoReference string, maxWidth int) string {
	return fmt.Sprintf("%s?maxwidth=%d&photoreference=%s&key=%s", photoEndpoint, maxWidth, photoReference, c.apiKey)
}

func wrapProviderError(op string, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "ZERO_RESULTS") || strings.Contains(msg, "NOT_FOUND") {
		return ErrNotFound
	}
	return &ProviderError{Op: op, Err: err}
}
