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
	"strings"
	"testing"
)

func TestValidateSearchParams(t *testing.T) {
	tests := []struct {
		name      string
		location  string
		placeType string
		radius    string
		wantOK    bool
		wantMsg   string
	}{
		{"valid", "Bogota", "pharmacy", "5000", true, ""},
		{"valid min radius", "Bogota", "hospital", "100", true, ""},
		{"valid max radius", "Bogota", "veterinary_care", "50000", true, ""},
		{"empty location", "", "pharmacy", "5000", false, "location must be at least 2 characters"},
		{"one char location", "x", "pharmacy", "5000", false, "location must be at least 2 characters"},
		{"whitespace location", "   a   ", "pharmacy", "5000", false, "location must be at least 2 characters"},
		{"two chars after trim", " ab ", "pharmacy", "5000", true, ""},
		{"long location", strings.Repeat("a", 201), "pharmacy", "5000", false, "location too long (maximum 200 characters)"},
		{"200 chars exactly", strings.Repeat("a", 200), "pharmacy", "5000", true, ""},
		{"unknown type", "Bogota", "casino", "5000", false, ""},
		{"empty type", "Bogota", "", "5000", false, ""},
		{"type checked before radius", "Bogota", "casino", "bogus", false, ""},
		{"non-integer radius", "Bogota", "doctor", "5km", false, "radius must be an integer"},
		{"float radius", "Bogota", "doctor", "5000.5", false, "radius must be an integer"},
		{"radius below minimum", "Bogota", "dentist", "99", false, "minimum radius is 100 meters"},
		{"radius above maximum", "Bogota", "clinic", "50001", false, "radius exceeds maximum of 50000 meters (50 km)"},
		{"huge radius", "Bogota", "physiotherapist", "200000", false, "radius exceeds maximum of 50000 meters (50 km)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateSearchParams(tt.location, tt.placeType, tt.radius)
			if ok != tt.wantOK {
				t.Fatalf("ValidateSearchParams(%q, %q, %q) ok = %v, want %v (msg %q)",
					tt.location, tt.placeType, tt.radius, ok, tt.wantOK, msg)
			}
			if tt.wantMsg != "" && msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateSearchParamsUnknownTypeListsValidSet(t *testing.T) {
	_, msg := ValidateSearchParams("Bogota", "bakery", "5000")
	for _, typ := range ValidTypes() {
		if !strings.Contains(msg, typ) {
			t.Errorf("error message %q does not mention %q", msg, typ)
		}
	}
}

func TestValidatePlaceID(t *testing.T) {
	tests := []struct {
		name    string
		placeID string
		wantOK  bool
	}{
		{"valid", "ChIJN1t_tDeuEmsRUsoyG83frY4", true},
		{"empty", "", false},
		{"too short", "short", false},
		{"nine chars", "123456789", false},
		{"ten chars", "1234567890", true},
		{"too long", strings.Repeat("a", 201), false},
		{"200 chars", strings.Repeat("a", 200), true},
		{"underscore and dash", "abc_def-ghi", true},
		{"spaces", "ChIJN1t tDeuEmsRUso", false},
		{"injection", "ChIJ';DROP TABLE--", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ok, msg := ValidatePlaceID(tt.placeID); ok != tt.wantOK {
				t.Errorf("ValidatePlaceID(%q) ok = %v, want %v (msg %q)", tt.placeID, ok, tt.wantOK, msg)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		lat, lng float64
		wantOK   bool
	}{
		{4.711, -74.0721, true},
		{90, 180, true},
		{-90, -180, true},
		{90.01, 0, false},
		{-91, 0, false},
		{0, 180.5, false},
		{0, -181, false},
	}
	for _, tt := range tests {
		if ok, _ := ValidateCoordinates(tt.lat, tt.lng); ok != tt.wantOK {
			t.Errorf("ValidateCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lng, ok, tt.wantOK)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bogota", "Bogota"},
		{"", ""},
		{`<script>alert("x")</script>`, "scriptalert(x)/script"},
		{"calle   123   sur", "calle 123 sur"},
		{"  padded  ", "padded"},
		{`it's; a \"test\"`, "its a test"},
		{"tab\tand\nnewline", "tab and newline"},
	}
	for _, tt := range tests {
		if got := SanitizeInput(tt.in); got != tt.want {
			t.Errorf("SanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
