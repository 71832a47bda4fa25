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
	"strconv"
	"strings"
)

const defaultPhotoWidth = 400

type photoData struct {
	URL string `json:"url"`
}

// handlePhoto builds the provider photo URL for a reference. No network call
// is involved; the client fetches the image from the provider directly.
func (s *Service) handlePhoto(rw http.ResponseWriter, r *http.Request) {
	reference := strings.TrimSpace(r.URL.Query().Get("reference"))
	if reference == "" {
		writeError(rw, http.StatusBadRequest, "photo reference is required")
		return
	}

	width := defaultPhotoWidth
	if w := r.URL.Query().Get("width"); w != "" {
		parsed, err := strconv.Atoi(w)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "width must be an integer")
			return
		}
		width = parsed
	}

	writeSuccess(rw, photoData{URL: s.places.PhotoURL(reference, width)})
}
