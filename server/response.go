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
	"encoding/json"
	"log"
	"net/http"
)

// envelope is the uniform response body used by every endpoint. Failures
// always carry a nil Data.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func writeJSON(rw http.ResponseWriter, status int, body envelope) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeSuccess(rw http.ResponseWriter, data interface{}) {
	writeJSON(rw, http.StatusOK, envelope{Success: true, Message: "Success", Data: data})
}

func writeError(rw http.ResponseWriter, status int, message string) {
	writeJSON(rw, status, envelope{Success: false, Message: message})
}
