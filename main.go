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

package main

import (
	"log"
	"net/http"

	"github.com/buscasalud/buscasalud/service/server"
	"github.com/buscasalud/buscasalud/service/server/config"
	"github.com/buscasalud/buscasalud/service/server/places"
	"github.com/buscasalud/buscasalud/service/server/quota"
	"github.com/buscasalud/buscasalud/service/server/util/redact"
	"github.com/buscasalud/buscasalud/service/server/util/storage"
	"github.com/honeycombio/beeline-go"
	"github.com/honeycombio/beeline-go/wrappers/hnynethttp"
)

func main() {
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	beeline.Init(beeline.Config{
		WriteKey:    cfg.HoneycombKey,
		Dataset:     "buscasalud",
		ServiceName: "places-api",
		PresendHook: redact.CleanHoneycomb,
	})
	defer beeline.Close()
	http.DefaultTransport = hnynethttp.WrapRoundTripper(http.DefaultTransport)

	client, err := places.NewClient(cfg.GoogleMapsKey)
	if err != nil {
		log.Fatalf("Creating places client failed: %v", err)
	}
	tracker := quota.NewTracker(storage.GetRedis())
	service := server.NewService(client, tracker, cfg.CorsOrigins)
	addr := "0.0.0.0:" + cfg.Port
	log.Printf("Listening on %s.", addr)
	log.Fatal(service.ListenAndServe(addr))
}
