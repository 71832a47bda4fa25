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

package quota

import (
	"context"
	"testing"
	"time"
)

func TestKeyForMonth(t *testing.T) {
	at := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	if got, want := keyForMonth(at), "maps-credits:2608"; got != want {
		t.Errorf("keyForMonth = %q, want %q", got, want)
	}
	at = time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got, want := keyForMonth(at), "maps-credits:2701"; got != want {
		t.Errorf("keyForMonth = %q, want %q", got, want)
	}
}

func TestNilTrackerIsNoOp(t *testing.T) {
	var q *Tracker
	if err := q.ChargeCredits(context.Background(), GeocodeCredits); err != nil {
		t.Errorf("nil tracker ChargeCredits = %v, want nil", err)
	}
	used, err := q.Usage(context.Background())
	if err != nil || used != 0 {
		t.Errorf("nil tracker Usage = %d, %v; want 0, nil", used, err)
	}
}

func TestNewTrackerWithoutRedis(t *testing.T) {
	if NewTracker(nil) != nil {
		t.Error("NewTracker(nil) should return a nil tracker")
	}
}
