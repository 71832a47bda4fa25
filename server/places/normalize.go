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
	"googlemaps.github.io/maps"
)

// Display defaults for fields the provider may omit. These strings are part
// of the API contract and must not change.
const (
	DefaultName    = "Sin nombre"
	DefaultAddress = "Dirección no disponible"
)

const (
	maxReviews = 3
	maxPhotos  = 5
)

// FromSearchResult maps one raw nearby-search record to a HealthPlace,
// filling the documented defaults for anything missing. It is total over
// partial records: no input ever makes it fail.
func FromSearchResult(r maps.PlacesSearchResult) HealthPlace {
	p := HealthPlace{
		PlaceID:          r.PlaceID,
		Name:             orDefault(r.Name, DefaultName),
		Address:          orDefault(r.Vicinity, DefaultAddress),
		Coordinates:      Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		Rating:           float64(r.Rating),
		UserRatingsTotal: r.UserRatingsTotal,
		PriceLevel:       r.PriceLevel,
		Types:            nonNil(r.Types),
	}
	// open_now only exists when the provider sent opening hours at all; a
	// missing block stays nil ("unknown"), never false.
	if r.OpeningHours != nil {
		p.OpenNow = r.OpeningHours.OpenNow
	}
	if len(r.Photos) > 0 {
		p.PhotoReference = r.Photos[0].PhotoReference
	}
	return p
}

// NormalizeSearchResults maps a batch of raw records. Records with no place
// id are broken as far as this API is concerned and are skipped; one bad
// record never aborts the batch.
func NormalizeSearchResults(results []maps.PlacesSearchResult) []HealthPlace {
	out := make([]HealthPlace, 0, len(results))
	for _, r := range results {
		if r.PlaceID == "" {
			continue
		}
		out = append(out, FromSearchResult(r))
	}
	return out
}

// FromDetailsResult maps a raw place-details record to a DetailedHealthPlace,
// keeping at most the first 3 reviews and the first 5 photo references in
// provider order.
func FromDetailsResult(r maps.PlaceDetailsResult) DetailedHealthPlace {
	p := DetailedHealthPlace{
		PlaceID:          r.PlaceID,
		Name:             orDefault(r.Name, DefaultName),
		Address:          orDefault(r.FormattedAddress, DefaultAddress),
		Coordinates:      Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		Rating:           float64(r.Rating),
		UserRatingsTotal: r.UserRatingsTotal,
		PriceLevel:       r.PriceLevel,
		Types:            nonNil(r.Types),
		Phone:            r.FormattedPhoneNumber,
		Website:          r.Website,
		Reviews:          []Review{},
		Photos:           []string{},
	}
	p.OpeningHours.WeekdayText = []string{}
	if r.OpeningHours != nil {
		p.OpeningHours.OpenNow = r.OpeningHours.OpenNow
		p.OpeningHours.WeekdayText = nonNil(r.OpeningHours.WeekdayText)
	}
	for _, review := range r.Reviews {
		if len(p.Reviews) == maxReviews {
			break
		}
		p.Reviews = append(p.Reviews, Review{
			AuthorName: review.AuthorName,
			Rating:     review.Rating,
			Text:       review.Text,
			Time:       review.Time,
			Language:   review.Language,
		})
	}
	for _, photo := range r.Photos {
		if len(p.Photos) == maxPhotos {
			break
		}
		p.Photos = append(p.Photos, photo.PhotoReference)
	}
	return p
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// nonNil keeps optional lists serializing as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
