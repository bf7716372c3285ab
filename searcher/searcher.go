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

//go:generate mockgen -destination mocks/searcher_mock.go -source searcher.go -package mocks

package searcher

import (
	"context"

	"github.com/openmirror/mirrorlist/geo"
	logger "github.com/openmirror/mirrorlist/internal/mlog"
	"github.com/openmirror/mirrorlist/metrics"
	"github.com/openmirror/mirrorlist/models"
	"github.com/openmirror/mirrorlist/registry"
)

const (
	// MaxMirrorResults bounds each tier and the final mirror list.
	MaxMirrorResults = 5
)

// Searcher selects the best ordered set of mirrors for a client address.
type Searcher interface {
	// FindNearestMirrors returns at most MaxMirrorResults mirrors for
	// addr. When the address cannot be localized it returns every
	// non-expired mirror, or an empty list with emptyOnUnknown set.
	FindNearestMirrors(ctx context.Context, addr string, emptyOnUnknown bool) ([]models.Mirror, error)
}

type searcher struct {
	registry registry.Registry
	resolver geo.Resolver
}

// New returns the default searcher.
func New(registry registry.Registry, resolver geo.Resolver) Searcher {
	return &searcher{
		registry: registry,
		resolver: resolver,
	}
}

// FindNearestMirrors searches three tiers in fixed priority order: mirrors
// in the client's country, mirrors on the client's continent by distance,
// and all mirrors by distance. Each tier is capped at MaxMirrorResults;
// the concatenation is truncated to the first MaxMirrorResults entries.
// A same-country mirror always outranks a nearer mirror abroad.
func (s *searcher) FindNearestMirrors(ctx context.Context, addr string, emptyOnUnknown bool) ([]models.Mirror, error) {
	metrics.SearchCount.Inc()

	location, err := s.resolver.Resolve(ctx, addr)
	if err != nil || location == nil {
		// Resolution failure is a designed branch, not an error. Serve
		// everything rather than nothing, unless the caller asked for
		// geographically relevant results only.
		metrics.SearchUnknownCount.Inc()
		logger.Debugf("address %s has no geo data", addr)

		if emptyOnUnknown {
			return []models.Mirror{}, nil
		}

		return s.registry.ActiveMirrors(ctx)
	}

	byCountry, err := s.registry.ActiveByCountry(ctx, location.Continent, location.Country, MaxMirrorResults)
	if err != nil {
		return nil, err
	}

	byContinent, err := s.registry.ActiveByContinent(ctx, location.Continent, location.Latitude, location.Longitude, MaxMirrorResults)
	if err != nil {
		return nil, err
	}

	nearest, err := s.registry.ActiveNearest(ctx, location.Latitude, location.Longitude, MaxMirrorResults)
	if err != nil {
		return nil, err
	}

	// Tier order is the correctness contract. A mirror satisfying more
	// than one tier keeps only its highest-priority slot.
	seen := make(map[string]struct{}, MaxMirrorResults)
	mirrors := make([]models.Mirror, 0, MaxMirrorResults)
	for _, tier := range [][]models.Mirror{byCountry, byContinent, nearest} {
		for _, mirror := range tier {
			if _, ok := seen[mirror.Name]; ok {
				continue
			}
			seen[mirror.Name] = struct{}{}

			mirrors = append(mirrors, mirror)
			if len(mirrors) == MaxMirrorResults {
				return mirrors, nil
			}
		}
	}

	return mirrors, nil
}
