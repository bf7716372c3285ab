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

package service

import (
	"context"
	"fmt"
	"strings"

	cachev8 "github.com/go-redis/cache/v8"

	"github.com/openmirror/mirrorlist/cache"
	"github.com/openmirror/mirrorlist/internal/mlerrors"
	logger "github.com/openmirror/mirrorlist/internal/mlog"
	"github.com/openmirror/mirrorlist/models"
	"github.com/openmirror/mirrorlist/types"
)

func (s *rest) FindNearestMirrors(ctx context.Context, addr string, emptyOnUnknown bool) ([]models.Mirror, error) {
	var mirrors []models.Mirror
	cacheKey := cache.MakeNearestCacheKey(addr, emptyOnUnknown)

	if s.cacheGet(ctx, cacheKey, &mirrors) {
		return mirrors, nil
	}

	mirrors, err := s.searcher.FindNearestMirrors(ctx, addr, emptyOnUnknown)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cacheKey, &mirrors)
	return mirrors, nil
}

func (s *rest) GetMirrorList(ctx context.Context, addr, version, repository string) (string, error) {
	if !s.config.Distro.HasVersion(version) {
		return "", mlerrors.NewUnknownVersion(version, s.config.Distro.Versions)
	}

	repositoryPath, ok := s.config.Distro.RepositoryPath(repository)
	if !ok {
		return "", mlerrors.NewUnknownRepository(repository, s.config.Distro.RepositoryNames())
	}

	var mirrorlist string
	cacheKey := cache.MakeMirrorlistCacheKey(addr, version, repository)
	if s.cacheGet(ctx, cacheKey, &mirrorlist) {
		return mirrorlist, nil
	}

	mirrors, err := s.searcher.FindNearestMirrors(ctx, addr, false)
	if err != nil {
		return "", err
	}

	urls := make([]string, 0, len(mirrors))
	for _, mirror := range mirrors {
		base, ok := mirror.PreferredURL(s.config.Distro.RequiredProtocols)
		if !ok {
			continue
		}

		urls = append(urls, joinURL(base, version, repositoryPath))
	}

	mirrorlist = strings.Join(urls, "\n")
	s.cacheSet(ctx, cacheKey, &mirrorlist)
	return mirrorlist, nil
}

func (s *rest) GetISOList(ctx context.Context, addr, version, arch string) (*types.ISOListResponse, error) {
	if !s.config.Distro.HasVersion(version) {
		return nil, mlerrors.NewUnknownVersion(version, s.config.Distro.Versions)
	}

	if !s.config.Distro.HasArch(arch) {
		return nil, mlerrors.NewUnknownArch(arch, s.config.Distro.Architectures)
	}

	mirrors, err := s.registry.AllMirrors(ctx)
	if err != nil {
		return nil, err
	}

	byCountry := map[string][]types.ISOMirror{}
	for _, mirror := range mirrors {
		iso, ok := isoMirror(mirror, s.config.Distro.RequiredProtocols, version, arch)
		if !ok {
			continue
		}

		byCountry[mirror.Country] = append(byCountry[mirror.Country], iso)
	}

	nearestMirrors, err := s.searcher.FindNearestMirrors(ctx, addr, true)
	if err != nil {
		return nil, err
	}

	nearest := make([]types.ISOMirror, 0, len(nearestMirrors))
	for _, mirror := range nearestMirrors {
		iso, ok := isoMirror(mirror, s.config.Distro.RequiredProtocols, version, arch)
		if !ok {
			continue
		}

		nearest = append(nearest, iso)
	}

	return &types.ISOListResponse{
		Nearest:   nearest,
		ByCountry: byCountry,
	}, nil
}

func (s *rest) GetVersionTable(ctx context.Context) map[string][]string {
	duplicated := map[string]struct{}{}
	for _, version := range s.config.Distro.DuplicatedVersions {
		duplicated[version] = struct{}{}
	}

	versions := make([]string, 0, len(s.config.Distro.Versions))
	for _, version := range s.config.Distro.Versions {
		if _, ok := duplicated[version]; ok {
			continue
		}

		versions = append(versions, version)
	}

	table := make(map[string][]string, len(s.config.Distro.Architectures))
	for _, arch := range s.config.Distro.Architectures {
		table[arch] = versions
	}

	return table
}

func (s *rest) GetURLTypes(ctx context.Context) ([]string, error) {
	var urlTypes []string
	cacheKey := cache.MakeURLTypesCacheKey()
	if s.cacheGet(ctx, cacheKey, &urlTypes) {
		return urlTypes, nil
	}

	urlTypes, err := s.registry.URLTypes(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cacheKey, &urlTypes)
	return urlTypes, nil
}

func (s *rest) TriggerSync(ctx context.Context) error {
	return s.sync.SyncOnce(ctx)
}

func (s *rest) cacheGet(ctx context.Context, key string, value interface{}) bool {
	if s.cache == nil {
		return false
	}

	if err := s.cache.Get(ctx, key, value); err != nil {
		logger.Debugf("%s cache miss", key)
		return false
	}

	return true
}

func (s *rest) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Once(&cachev8.Item{
		Ctx:   ctx,
		Key:   key,
		Value: value,
		TTL:   s.cache.TTL,
	}); err != nil {
		logger.Warnf("storage cache failed: %v", err)
	}
}

func isoMirror(mirror models.Mirror, protocols []string, version, arch string) (types.ISOMirror, bool) {
	base, ok := mirror.PreferredURL(protocols)
	if !ok {
		return types.ISOMirror{}, false
	}

	return types.ISOMirror{
		Name: mirror.Name,
		URL:  joinURL(base, version, "isos", arch) + "/",
	}, true
}

// joinURL joins a mirror base address with path elements, tolerating a
// trailing slash on the base.
func joinURL(base string, elems ...string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), strings.Join(elems, "/"))
}
