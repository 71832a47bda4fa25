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

package storage

import (
	"log"

	"github.com/buscasalud/buscasalud/service/server/config"
	"github.com/redis/go-redis/v9"
)

// GetRedis returns a client for the configured redis, or nil when none is
// configured. The quota ledger is simply disabled in the nil case.
func GetRedis() *redis.Client {
	u := config.GetConfig().RedisURL
	if u == "" {
		log.Print("REDIS_URL not set; quota tracking disabled")
		return nil
	}
	opts, err := redis.ParseURL(u)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	return redis.NewClient(opts)
}
