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
	"net/http"

	"github.com/buscasalud/buscasalud/service/server/fhirsim"
	"github.com/buscasalud/buscasalud/service/server/places"
)

// The /api/fhir and /api/hl7 routes serve simulated interoperability data
// from the fhirsim package. They never touch the mapping provider.

func (s *Service) handleAvailability(rw http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("place_id")
	if ok, msg := places.ValidatePlaceID(placeID); !ok {
		writeError(rw, http.StatusBadRequest, msg)
		return
	}
	writeSuccess(rw, fhirsim.HospitalAvailability(placeID))
}

func (s *Service) handlePharmacyStock(rw http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("place_id")
	if ok, msg := places.ValidatePlaceID(placeID); !ok {
		writeError(rw, http.StatusBadRequest, msg)
		return
	}
	writeSuccess(rw, fhirsim.Stock(placeID))
}

type hl7Data struct {
	PlaceType   string            `json:"place_type"`
	Services    []fhirsim.Service `json:"services"`
	HL7Standard string            `json:"hl7_standard"`
}

func (s *Service) handleHL7Services(rw http.ResponseWriter, r *http.Request) {
	placeType := r.PathValue("place_type")
	writeSuccess(rw, hl7Data{
		PlaceType:   placeType,
		Services:    fhirsim.ServicesSummary(placeType),
		HL7Standard: fhirsim.HL7Version,
	})
}
