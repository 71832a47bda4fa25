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

// Package fhirsim generates simulated FHIR/HL7 payloads. Everything here is
// mock data for demo purposes; nothing talks to a real interoperability
// endpoint, and nothing in the real provider path depends on this package.
package fhirsim

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const FHIRVersion = "4.0.1"
const HL7Version = "2.8"

type AvailableTime struct {
	DaysOfWeek         []string `json:"daysOfWeek"`
	AvailableStartTime string   `json:"availableStartTime"`
	AvailableEndTime   string   `json:"availableEndTime"`
}

// HealthcareService is the FHIR resource fragment embedded in availability
// responses.
type HealthcareService struct {
	ResourceType           string          `json:"resourceType"`
	ID                     string          `json:"id"`
	Active                 bool            `json:"active"`
	AvailableTime          []AvailableTime `json:"availableTime"`
	NotAvailable           []string        `json:"notAvailable"`
	AvailabilityExceptions string          `json:"availabilityExceptions"`
}

type WaitTimes struct {
	Emergency    int `json:"emergency"`
	Consultation int `json:"consultation"`
	Specialist   int `json:"specialist"`
}

type Availability struct {
	FHIRData        HealthcareService `json:"fhir_data"`
	WaitTimes       WaitTimes         `json:"wait_times"`
	Status          string            `json:"status"`
	NextAppointment string            `json:"next_appointment"`
	AppointmentID   string            `json:"appointment_id"`
}

// HospitalAvailability simulates a hospital's FHIR HealthcareService record
// with randomized wait times and a next appointment 2-48 hours out.
func HospitalAvailability(placeID string) Availability {
	status := "available"
	if rand.IntN(3) == 0 {
		status = "busy"
	}
	return Availability{
		FHIRData: HealthcareService{
			ResourceType: "HealthcareService",
			ID:           placeID,
			Active:       true,
			AvailableTime: []AvailableTime{{
				DaysOfWeek:         []string{"mon", "tue", "wed", "thu", "fri"},
				AvailableStartTime: "08:00:00",
				AvailableEndTime:   "18:00:00",
			}},
			NotAvailable:           []string{},
			AvailabilityExceptions: "Emergencias 24/7",
		},
		WaitTimes: WaitTimes{
			Emergency:    randBetween(15, 45),
			Consultation: randBetween(30, 90),
			Specialist:   randBetween(60, 180),
		},
		Status:          status,
		NextAppointment: time.Now().Add(time.Duration(randBetween(2, 48)) * time.Hour).Format(time.RFC3339),
		AppointmentID:   uuid.NewString(),
	}
}

type MedicationAmount struct {
	Value int `json:"value"`
}

type MedicationCode struct {
	Text string `json:"text"`
}

type Medication struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id"`
	Code         MedicationCode   `json:"code"`
	Status       string           `json:"status"`
	Amount       MedicationAmount `json:"amount"`
}

type PharmacyStock struct {
	PharmacyID  string       `json:"pharmacy_id"`
	Medications []Medication `json:"medications"`
	LastUpdated string       `json:"last_updated"`
	FHIRVersion string       `json:"fhir_version"`
}

// Stock simulates a pharmacy inventory of common medications as FHIR
// Medication resources.
func Stock(placeID string) PharmacyStock {
	amoxStatus := "active"
	if rand.IntN(2) == 0 {
		amoxStatus = "inactive"
	}
	return PharmacyStock{
		PharmacyID: placeID,
		Medications: []Medication{
			{
				ResourceType: "Medication",
				ID:           "med-001",
				Code:         MedicationCode{Text: "Paracetamol 500mg"},
				Status:       "active",
				Amount:       MedicationAmount{Value: randBetween(50, 200)},
			},
			{
				ResourceType: "Medication",
				ID:           "med-002",
				Code:         MedicationCode{Text: "Ibuprofeno 400mg"},
				Status:       "active",
				Amount:       MedicationAmount{Value: randBetween(30, 150)},
			},
			{
				ResourceType: "Medication",
				ID:           "med-003",
				Code:         MedicationCode{Text: "Amoxicilina 500mg"},
				Status:       amoxStatus,
				Amount:       MedicationAmount{Value: randBetween(0, 100)},
			},
		},
		LastUpdated: time.Now().Format(time.RFC3339),
		FHIRVersion: FHIRVersion,
	}
}

type Service struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ServicesSummary lists the services a place of the given type offers.
// Unknown types get an empty list.
func ServicesSummary(placeType string) []Service {
	switch placeType {
	case "hospital":
		return []Service{
			{Code: "emergency", Name: "Urgencias", Available: true},
			{Code: "surgery", Name: "Cirugía", Available: true},
			{Code: "cardiology", Name: "Cardiología", Available: rand.IntN(2) == 0},
			{Code: "pediatrics", Name: "Pediatría", Available: true},
		}
	case "pharmacy":
		return []Service{
			{Code: "prescription", Name: "Medicamentos con receta", Available: true},
			{Code: "otc", Name: "Venta libre", Available: true},
			{Code: "consultation", Name: "Consulta farmacéutica", Available: true},
		}
	case "dentist":
		return []Service{
			{Code: "cleaning", Name: "Limpieza dental", Available: true},
			{Code: "extraction", Name: "Extracciones", Available: true},
			{Code: "orthodontics", Name: "Ortodoncia", Available: false},
		}
	}
	return []Service{}
}

// randBetween mirrors python's random.randint: both bounds inclusive.
func randBetween(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}
