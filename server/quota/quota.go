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

// Package quota keeps a best-effort ledger of what we spend on the Google
// Maps APIs. One credit is worth $0.000000025.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycombio/beeline-go"
	"github.com/redis/go-redis/v9"
)

const GeocodeCredits = 200_000
const NearbySearchCredits = 1_280_000
const PlaceDetailsCredits = 680_000

// Tracker accumulates outbound API credits in redis, one counter per
// calendar month. A nil Tracker is valid and records nothing, so the service
// can run without redis.
type Tracker struct {
	redis *redis.Client
}

func NewTracker(redisClient *redis.Client) *Tracker {
	if redisClient == nil {
		return nil
	}
	return &Tracker{redis: redisClient}
}

// ChargeCredits adds credits to the current month's counter. Failures are
// returned for logging but must never block the request being served.
func (q *Tracker) ChargeCredits(ctx context.Context, credits int) error {
	if q == nil {
		return nil
	}
	ctx, span := beeline.StartSpan(ctx, "charge_credits")
	defer span.Send()
	span.AddField("credits", credits)
	key := keyForMonth(time.Now())
	result := q.redis.IncrBy(ctx, key, int64(credits))
	if result.Err() != nil {
		span.AddField("error", result.Err())
		return result.Err()
	}
	if result.Val() == int64(credits) {
		// First write this month; months expire well after they roll over.
		if _, err := q.redis.Expire(ctx, key, 45*24*time.Hour).Result(); err != nil {
			span.AddField("error", err)
			return err
		}
	}
	return nil
}

// Usage reports the credits charged so far this month.
func (q *Tracker) Usage(ctx context.Context) (int64, error) {
	if q == nil {
		return 0, nil
	}
	ctx, span := beeline.StartSpan(ctx, "get_quota_usage")
	defer span.Send()
	result := q.redis.Get(ctx, keyForMonth(time.Now()))
	if result.Err() == redis.Nil {
		return 0, nil
	}
	if result.Err() != nil {
		span.AddField("error", result.Err())
		return 0, result.Err()
	}
	return result.Int64()
}

func keyForMonth(now time.Time) string {
	return fmt.Sprintf("maps-credits:%02d%02d", now.Year()%100, now.Month())
}
