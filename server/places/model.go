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

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchLocation is the result of geocoding a free-text query. It only lives
// for the duration of a single search request.
type SearchLocation struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// HealthPlace is the summary view of a health place returned by a nearby
// search. OpenNow is nil when the provider has no opening-hours data for the
// place; it serializes as null rather than false so clients can tell
// "closed" from "unknown".
type HealthPlace struct {
	PlaceID          string      `json:"place_id"`
	Name             string      `json:"name"`
	Address          string      `json:"address"`
	Coordinates      Coordinates `json:"coordinates"`
	Rating           float64     `json:"rating"`
	UserRatingsTotal int         `json:"user_ratings_total"`
	PriceLevel       int         `json:"price_level"`
	Types            []string    `json:"types"`
	OpenNow          *bool       `json:"open_now"`
	PhotoReference   string      `json:"photo_reference"`
	DistanceKm       float64     `json:"distance_km,omitempty"`
}

// OpeningHours is the detailed-view schedule block.
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

// Review is a single user review of a place.
type Review struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Time       int    `json:"time"`
	Language   string `json:"language"`
}

// DetailedHealthPlace is the full view returned by a place-details lookup.
// Reviews holds at most the first 3 reviews and Photos at most the first 5
// photo references, both in provider order.
type DetailedHealthPlace struct {
	PlaceID          string       `json:"place_id"`
	Name             string       `json:"name"`
	Address          string       `json:"address"`
	Coordinates      Coordinates  `json:"coordinates"`
	Rating           float64      `json:"rating"`
	UserRatingsTotal int          `json:"user_ratings_total"`
	PriceLevel       int          `json:"price_level"`
	Types            []string     `json:"types"`
	Phone            string       `json:"phone"`
	Website          string       `json:"website"`
	OpeningHours     OpeningHours `json:"opening_hours"`
	Reviews          []Review     `json:"reviews"`
	Photos           []string     `json:"photos"`
}

// HealthPlaceTypes maps every supported place type code to its display label.
// The key set is the search validator's allow-list.
var HealthPlaceTypes = map[string]string{
	"pharmacy":        "Farmacia",
	"hospital":        "Hospital",
	"clinic":          "Clínica",
	"doctor":          "Consultorio Médico",
	"dentist":         "Dentista",
	"physiotherapist": "Fisioterapeuta",
	"veterinary_care": "Veterinaria",
}
