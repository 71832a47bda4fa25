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

package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	GoogleMapsKey string
	Port          string
	RedisURL      string
	HoneycombKey  string
	CorsOrigins   []string
}

var c Config

func GetConfig() *Config {
	return &c
}

func init() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only log if the file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			log.Printf("Error loading .env file: %v", err)
		}
	}

	c = Config{
		GoogleMapsKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		Port:          os.Getenv("PORT"),
		RedisURL:      os.Getenv("REDIS_URL"),
		HoneycombKey:  os.Getenv("HONEYCOMB_KEY"),
		CorsOrigins:   splitOrigins(os.Getenv("CORS_ORIGINS")),
	}
	if c.Port == "" {
		c.Port = "8080"
	}
}

func splitOrigins(s string) []string {
	if s == "" {
		s = "http://localhost:5173,http://localhost:3000"
	}
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Validate checks the parts of the configuration the service cannot run
// without. It must be called before serving any traffic.
func (cfg *Config) Validate() error {
	if cfg.GoogleMapsKey == "" {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY is not set")
	}
	return nil
}
