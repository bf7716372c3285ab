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

package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"

	"github.com/openmirror/mirrorlist/config"
	"github.com/openmirror/mirrorlist/database"
)

const (
	// Nearest mirrors prefix of cache key.
	NearestNamespace = "nearest"

	// Mirrorlist prefix of cache key.
	MirrorlistNamespace = "mirrorlist"

	// URL types prefix of cache key.
	URLTypesNamespace = "url-types"
)

// Cache is cache client.
type Cache struct {
	*cache.Cache
	TTL time.Duration
}

// New cache instance.
func New(cfg *config.Config, db *database.Database) *Cache {
	var localCache *cache.TinyLFU
	if cfg.Cache != nil && cfg.Cache.Local != nil {
		localCache = cache.NewTinyLFU(cfg.Cache.Local.Size, cfg.Cache.Local.TTL)
	}

	var ttl time.Duration
	if cfg.Cache != nil && cfg.Cache.Redis != nil {
		ttl = cfg.Cache.Redis.TTL
	}

	return &Cache{
		Cache: cache.New(&cache.Options{
			Redis:      db.RDB,
			LocalCache: localCache,
		}),
		TTL: ttl,
	}
}

// Make cache key.
func MakeCacheKey(namespace string, id string) string {
	return fmt.Sprintf("mirrorlist:%s:%s", namespace, id)
}

// Make cache key for the nearest mirror set of an address.
func MakeNearestCacheKey(addr string, emptyOnUnknown bool) string {
	return MakeCacheKey(NearestNamespace, fmt.Sprintf("%s-%t", addr, emptyOnUnknown))
}

// Make cache key for a rendered mirrorlist.
func MakeMirrorlistCacheKey(addr, version, repository string) string {
	return MakeCacheKey(MirrorlistNamespace, fmt.Sprintf("%s-%s-%s", addr, version, repository))
}

// Make cache key for the distinct url protocol types.
func MakeURLTypesCacheKey() string {
	return MakeCacheKey(URLTypesNamespace, "all")
}
