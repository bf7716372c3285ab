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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"

	"github.com/openmirror/mirrorlist/cache"
	"github.com/openmirror/mirrorlist/config"
	"github.com/openmirror/mirrorlist/job"
	"github.com/openmirror/mirrorlist/models"
	"github.com/openmirror/mirrorlist/registry"
	"github.com/openmirror/mirrorlist/searcher"
	"github.com/openmirror/mirrorlist/types"
)

// REST is the facade consumed by the http handlers.
type REST interface {
	// FindNearestMirrors returns the nearest mirror set for an address.
	FindNearestMirrors(ctx context.Context, addr string, emptyOnUnknown bool) ([]models.Mirror, error)

	// GetMirrorList renders the newline separated repository url list
	// for an address, a version and a repository name.
	GetMirrorList(ctx context.Context, addr, version, repository string) (string, error)

	// GetISOList returns installation image links grouped by country
	// plus the nearest subset for the address.
	GetISOList(ctx context.Context, addr, version, arch string) (*types.ISOListResponse, error)

	// GetVersionTable returns the per architecture version table.
	GetVersionTable(ctx context.Context) map[string][]string

	// GetURLTypes returns the distinct protocol types in the registry.
	GetURLTypes(ctx context.Context) ([]string, error)

	// TriggerSync runs one registry replacement cycle.
	TriggerSync(ctx context.Context) error
}

// rest is an implementation of REST.
type rest struct {
	config   *config.Config
	registry registry.Registry
	searcher searcher.Searcher
	sync     job.SyncMirrors
	cache    *cache.Cache
}

// NewREST returns a new REST instence.
func NewREST(cfg *config.Config, registry registry.Registry, searcher searcher.Searcher, sync job.SyncMirrors, cache *cache.Cache) REST {
	return &rest{
		config:   cfg,
		registry: registry,
		searcher: searcher,
		sync:     sync,
		cache:    cache,
	}
}
