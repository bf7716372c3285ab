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

//go:generate mockgen -destination mocks/registry_mock.go -source registry.go -package mocks

package registry

import (
	"context"

	"gorm.io/gorm"

	"github.com/openmirror/mirrorlist/models"
)

// Registry is the mirror registry store. Every read excludes expired
// mirrors; Replace swaps the full content in one atomic unit of work.
type Registry interface {
	// ActiveByCountry returns mirrors matching continent and country,
	// in store order, at most limit entries.
	ActiveByCountry(ctx context.Context, continent, country string, limit int) ([]models.Mirror, error)

	// ActiveByContinent returns mirrors on the continent ordered by
	// ascending distance to (lat, lon), at most limit entries.
	ActiveByContinent(ctx context.Context, continent string, lat, lon float64, limit int) ([]models.Mirror, error)

	// ActiveNearest returns mirrors anywhere ordered by ascending
	// distance to (lat, lon), at most limit entries.
	ActiveNearest(ctx context.Context, lat, lon float64, limit int) ([]models.Mirror, error)

	// ActiveMirrors returns every non-expired mirror, unordered.
	ActiveMirrors(ctx context.Context) ([]models.Mirror, error)

	// AllMirrors returns every non-expired mirror ordered by continent
	// and country, for grouped listings.
	AllMirrors(ctx context.Context) ([]models.Mirror, error)

	// URLTypes returns the distinct protocol types present in the registry.
	URLTypes(ctx context.Context) ([]string, error)

	// Replace atomically replaces the registry content with mirrors.
	// Concurrent readers observe either the previous or the new snapshot;
	// on failure the previous content stays authoritative.
	Replace(ctx context.Context, mirrors []models.Mirror) error
}

// New returns a Registry backed by db.
func New(db *gorm.DB) Registry {
	return &registry{db: db}
}
