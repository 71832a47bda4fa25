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

package server

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/buscasalud/buscasalud/service/server/places"
	"github.com/buscasalud/buscasalud/service/server/quota"
	"github.com/honeycombio/beeline-go"
	"github.com/umahmood/haversine"
)

type searchLocation struct {
	Address     string             `json:"address"`
	Coordinates places.Coordinates `json:"coordinates"`
}

type searchParams struct {
	Type   string `json:"type"`
	Radius int    `json:"radius"`
}

type searchData struct {
	Location     searchLocation       `json:"location"`
	Places       []places.HealthPlace `json:"places"`
	Total        int                  `json:"total"`
	SearchParams searchParams         `json:"search_params"`
}

// handleSearch runs the whole search pipeline: validate, geocode, nearby
// search, assemble. Validation failures never reach the network, and a
// failed geocode never triggers a nearby search.
func (s *Service) handleSearch(rw http.ResponseWriter, r *http.Request) {
	ctx, span := beeline.StartSpan(r.Context(), "search_places")
	defer span.Send()

	location := r.URL.Query().Get("location")
	placeType := r.URL.Query().Get("type")
	if placeType == "" {
		placeType = "pharmacy"
	}
	radiusText := r.URL.Query().Get("radius")
	if radiusText == "" {
		radiusText = "5000"
	}
	span.AddField("type", placeType)

	if ok, msg := places.ValidateSearchParams(location, placeType, radiusText); !ok {
		writeError(rw, http.StatusBadRequest, msg)
		return
	}
	// Validation guarantees this parses.
	radius, _ := strconv.Atoi(radiusText)
	location = places.SanitizeInput(location)

	log.Printf("Search: type=%s radius=%d", placeType, radius)

	s.chargeQuota(ctx, quota.GeocodeCredits)
	center, err := s.places.Geocode(ctx, location)
	if err != nil {
		span.AddField("error", err)
		status, msg := placesErrorResponse(err, "location not found")
		writeError(rw, status, msg)
		return
	}

	s.chargeQuota(ctx, quota.NearbySearchCredits)
	found, err := s.places.NearbySearch(ctx, center, placeType, radius)
	if err != nil {
		span.AddField("error", err)
		status, msg := placesErrorResponse(err, "location not found")
		writeError(rw, status, msg)
		return
	}
	log.Printf("Found %d places", len(found))

	origin := haversine.Coord{Lat: center.Lat, Lon: center.Lng}
	for i := range found {
		_, km := haversine.Distance(origin, haversine.Coord{
			Lat: found[i].Coordinates.Lat,
			Lon: found[i].Coordinates.Lng,
		})
		found[i].DistanceKm = math.Round(km*100) / 100
	}

	writeSuccess(rw, searchData{
		Location: searchLocation{
			Address:     center.Address,
			Coordinates: places.Coordinates{Lat: center.Lat, Lng: center.Lng},
		},
		Places:       found,
		Total:        len(found),
		SearchParams: searchParams{Type: placeType, Radius: radius},
	})
}

// placesErrorResponse maps the places error taxonomy to a status code and a
// client-safe message. Provider errors surface the upstream message but keep
// the bad-request class; anything unexpected is a 500.
func placesErrorResponse(err error, notFoundMsg string) (int, string) {
	if errors.Is(err, places.ErrNotFound) {
		return http.StatusNotFound, notFoundMsg
	}
	var pe *places.ProviderError
	if errors.As(err, &pe) {
		return http.StatusBadRequest, pe.Err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// chargeQuota records outbound spend best-effort; the ledger being down must
// never fail a request.
func (s *Service) chargeQuota(ctx context.Context, credits int) {
	if err := s.quota.ChargeCredits(ctx, credits); err != nil {
		log.Printf("Error charging %d quota credits: %v", credits, err)
	}
}
