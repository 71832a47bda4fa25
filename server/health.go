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
	"log"
	"net/http"

	"github.com/buscasalud/buscasalud/service/server/places"
)

const serviceName = "BuscaSalud API"
const serviceVersion = "1.0.0"

type healthData struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	CreditsUsed *int64 `json:"credits_used_this_month,omitempty"`
}

func (s *Service) handleHealth(rw http.ResponseWriter, r *http.Request) {
	data := healthData{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	}
	if s.quota != nil {
		used, err := s.quota.Usage(r.Context())
		if err != nil {
			log.Printf("Error reading quota usage: %v", err)
		} else {
			data.CreditsUsed = &used
		}
	}
	writeSuccess(rw, data)
}

type typesData struct {
	Types map[string]string `json:"types"`
}

func (s *Service) handleTypes(rw http.ResponseWriter, r *http.Request) {
	writeSuccess(rw, typesData{Types: places.HealthPlaceTypes})
}

func (s *Service) handleIndex(rw http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(rw, http.StatusNotFound, "endpoint not found")
		return
	}
	writeSuccess(rw, map[string]interface{}{
		"message": "BuscaSalud API - Encuentra lugares de salud cerca de ti",
		"version": serviceVersion,
		"endpoints": map[string]string{
			"search_places":     "/api/places/search",
			"place_details":     "/api/places/{place_id}",
			"photo_url":         "/api/places/photo",
			"health_types":      "/api/places/types",
			"health":            "/api/health",
			"fhir_availability": "/api/fhir/availability/{place_id}",
			"pharmacy_stock":    "/api/fhir/pharmacy/{place_id}/stock",
			"hl7_services":      "/api/hl7/services/{place_type}",
		},
	})
}
