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

//go:generate mockgen -destination mocks/geo_mock.go -source geo.go -package mocks

package geo

import (
	"context"

	"github.com/pkg/errors"

	"github.com/openmirror/mirrorlist/config"
)

// ErrUnresolved reports an address without geo data. Callers treat it as
// the resolution-unknown branch, never as a failure.
var ErrUnresolved = errors.New("address could not be resolved to a location")

// Location is the resolved geography of a client address.
type Location struct {
	Continent string
	Country   string
	Latitude  float64
	Longitude float64
}

// Resolver maps a network address to a location. Implementations return
// ErrUnresolved when no geo data exists for the address.
type Resolver interface {
	// Resolve returns the location of addr.
	Resolve(ctx context.Context, addr string) (*Location, error)

	// Close releases resolver resources.
	Close() error
}

// New returns the resolver selected by config.
func New(cfg *config.GeoConfig) (Resolver, error) {
	switch cfg.Type {
	case config.GeoTypeMaxmind:
		return newMaxmind(cfg)
	case config.GeoTypeHTTPAPI:
		return newHTTPAPI(cfg), nil
	default:
		return nil, errors.Errorf("unsupported geo resolver type %q", cfg.Type)
	}
}
