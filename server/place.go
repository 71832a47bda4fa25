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
	"github.com/buscasalud/buscasalud/service/server/quota"
	"github.com/honeycombio/beeline-go"
)

func (s *Service) handlePlaceDetails(rw http.ResponseWriter, r *http.Request) {
	ctx, span := beeline.StartSpan(r.Context(), "place_details")
	defer span.Send()

	placeID := r.PathValue("place_id")
	if ok, msg := places.ValidatePlaceID(placeID); !ok {
		writeError(rw, http.StatusBadRequest, msg)
		return
	}
	log.Printf("Fetching details for place %s", placeID)

	s.chargeQuota(ctx, quota.PlaceDetailsCredits)
	detailed, err := s.places.PlaceDetails(ctx, placeID)
	if err != nil {
		span.AddField("error", err)
		status, msg := placesErrorResponse(err, "place not found")
		writeError(rw, status, msg)
		return
	}
	writeSuccess(rw, detailed)
}
