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
	"net/http"

	"github.com/buscasalud/buscasalud/service/server/places"
	"github.com/buscasalud/buscasalud/service/server/quota"
	"github.com/honeycombio/beeline-go/wrappers/hnynethttp"
)

// PlacesBackend is the capability the handlers need from the mapping
// provider. The production implementation is *places.Client; tests inject a
// fake.
type PlacesBackend interface {
	Geocode(ctx context.Context, address string) (*places.SearchLocation, error)
	NearbySearch(ctx context.Context, location *places.SearchLocation, placeType string, radius int) ([]places.HealthPlace, error)
	PlaceDetails(ctx context.Context, placeID string) (*places.DetailedHealthPlace, error)
	PhotoURL(photoReference string, maxWidth int) string
}

type Service struct {
	mux         *http.ServeMux
	places      PlacesBackend
	quota       *quota.Tracker
	corsOrigins []string
}

// NewService wires up the route table. The backend is constructed once by
// the caller and shared across all requests; handlers never rebuild it.
func NewService(backend PlacesBackend, tracker *quota.Tracker, corsOrigins []string) *Service {
	s := &Service{
		mux:         http.NewServeMux(),
		places:      backend,
		quota:       tracker,
		corsOrigins: corsOrigins,
	}
	s.mux.HandleFunc("GET /api/places/search", s.handleSearch)
	s.mux.HandleFunc("GET /api/places/photo", s.handlePhoto)
	s.mux.HandleFunc("GET /api/places/types", s.handleTypes)
	s.mux.HandleFunc("GET /api/places/{place_id}", s.handlePlaceDetails)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/fhir/availability/{place_id}", s.handleAvailability)
	s.mux.HandleFunc("GET /api/fhir/pharmacy/{place_id}/stock", s.handlePharmacyStock)
	s.mux.HandleFunc("GET /api/hl7/services/{place_type}", s.handleHL7Services)
	s.mux.HandleFunc("/", s.handleIndex)
	return s
}

func (s *Service) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.withCORS(s.mux).ServeHTTP(rw, r)
}

func (s *Service) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, hnynethttp.WrapHandler(s))
}
