/*
 *     Copyright 2023 The Mirrorlist Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination mocks/verify_mock.go -source verify.go -package mocks

package verify

import (
	"context"
	"time"
)

const (
	// StatusActive marks a descriptor whose mirror serves current content.
	StatusActive = "active"

	// StatusExpired marks a descriptor whose mirror content is stale.
	StatusExpired = "expired"
)

// Descriptor is one verified mirror as reported by the verification
// subsystem: the full mirror attribute set plus a protocol to address
// mapping.
type Descriptor struct {
	Name            string
	Continent       string
	Country         string
	IP              string
	Latitude        float64
	Longitude       float64
	Status          string
	UpdateFrequency time.Time
	Sponsor         string
	SponsorURL      string
	Email           string
	Addresses       map[string]string
}

// Verifier produces the ordered sequence of verified mirror descriptors
// consumed by the registry replacement pipeline. Probing candidate
// mirrors and deciding which are live happens behind this interface.
type Verifier interface {
	// VerifiedMirrors returns the current verified mirror set.
	VerifiedMirrors(ctx context.Context) ([]Descriptor, error)
}
