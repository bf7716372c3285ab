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

//go:generate mockgen -destination mocks/sync_mirrors_mock.go -source sync_mirrors.go -package mocks

package job

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/openmirror/mirrorlist/config"
	logger "github.com/openmirror/mirrorlist/internal/mlog"
	"github.com/openmirror/mirrorlist/metrics"
	"github.com/openmirror/mirrorlist/models"
	"github.com/openmirror/mirrorlist/registry"
	"github.com/openmirror/mirrorlist/verify"
)

// ErrSyncRunning is returned when a replacement cycle is already in flight.
var ErrSyncRunning = errors.New("mirror sync already running")

// SyncMirrors is an interface for the mirror replacement job.
type SyncMirrors interface {
	// SyncOnce runs a single replacement cycle.
	SyncOnce(context.Context) error

	// Serve started sync mirrors server.
	Serve()

	// Stop sync mirrors server.
	Stop()
}

// syncMirrors is an implementation of SyncMirrors.
type syncMirrors struct {
	config   *config.Config
	registry registry.Registry
	verifier verify.Verifier
	running  *atomic.Bool
	done     chan struct{}
}

// newSyncMirrors returns a new SyncMirrors.
func newSyncMirrors(cfg *config.Config, registry registry.Registry, verifier verify.Verifier) SyncMirrors {
	return &syncMirrors{
		config:   cfg,
		registry: registry,
		verifier: verifier,
		running:  atomic.NewBool(false),
		done:     make(chan struct{}),
	}
}

// Serve started sync mirrors server.
func (sm *syncMirrors) Serve() {
	if sm.config.Sync.RunOnStart {
		if err := sm.SyncOnce(context.Background()); err != nil {
			logger.JobLogger.Errorf("initial sync mirrors job failed: %v", err)
		}
	}

	tick := time.NewTicker(sm.config.Sync.Interval)
	for {
		select {
		case <-tick.C:
			logger.JobLogger.Infof("sync mirrors job started")
			if err := sm.SyncOnce(context.Background()); err != nil {
				logger.JobLogger.Errorf("sync mirrors job failed: %v", err)
			}
		case <-sm.done:
			return
		}
	}
}

// Stop sync mirrors server.
func (sm *syncMirrors) Stop() {
	close(sm.done)
}

// SyncOnce runs a single replacement cycle. At most one cycle runs at a
// time, a cycle triggered while another is in flight fails with
// ErrSyncRunning and leaves the store untouched.
func (sm *syncMirrors) SyncOnce(ctx context.Context) error {
	if !sm.running.CAS(false, true) {
		return ErrSyncRunning
	}
	defer sm.running.Store(false)

	descriptors, err := sm.verifier.VerifiedMirrors(ctx)
	if err != nil {
		metrics.SyncFailureCount.Inc()
		return errors.Wrap(err, "load mirror descriptors")
	}

	mirrors := make([]models.Mirror, 0, len(descriptors))
	for _, descriptor := range descriptors {
		mirror, err := sm.buildMirror(descriptor)
		if err != nil {
			metrics.SyncSkippedMirrorCount.Inc()
			logger.JobLogger.Warnf("skip mirror descriptor %q: %v", descriptor.Name, err)
			continue
		}

		mirrors = append(mirrors, mirror)
	}

	if err := sm.registry.Replace(ctx, mirrors); err != nil {
		metrics.SyncFailureCount.Inc()
		return errors.Wrap(err, "replace mirrors")
	}

	metrics.SyncCount.Inc()
	logger.JobLogger.Infof("sync mirrors job replaced %d mirrors", len(mirrors))
	return nil
}

// buildMirror converts a verified descriptor into a storable mirror record.
func (sm *syncMirrors) buildMirror(descriptor verify.Descriptor) (models.Mirror, error) {
	if descriptor.Name == "" {
		return models.Mirror{}, errors.New("missing name")
	}

	urlTypes := make([]string, 0, len(descriptor.Addresses))
	for urlType := range descriptor.Addresses {
		urlTypes = append(urlTypes, urlType)
	}
	sort.Strings(urlTypes)

	urls := make([]models.MirrorURL, 0, len(urlTypes))
	hasRequiredProtocol := false
	for _, urlType := range urlTypes {
		url := descriptor.Addresses[urlType]
		if url == "" {
			continue
		}

		for _, protocol := range sm.config.Distro.RequiredProtocols {
			if urlType == protocol {
				hasRequiredProtocol = true
				break
			}
		}

		urls = append(urls, models.MirrorURL{
			Type: urlType,
			URL:  url,
		})
	}

	if !hasRequiredProtocol {
		return models.Mirror{}, errors.Errorf("no address with a required protocol %v", sm.config.Distro.RequiredProtocols)
	}

	return models.Mirror{
		Name:            descriptor.Name,
		Continent:       descriptor.Continent,
		Country:         descriptor.Country,
		IP:              descriptor.IP,
		Latitude:        descriptor.Latitude,
		Longitude:       descriptor.Longitude,
		IsExpired:       descriptor.Status == verify.StatusExpired,
		UpdateFrequency: descriptor.UpdateFrequency,
		SponsorName:     descriptor.Sponsor,
		SponsorURL:      descriptor.SponsorURL,
		Email:           descriptor.Email,
		URLs:            urls,
	}, nil
}
