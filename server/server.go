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

package server

import (
	"context"
	"net/http"

	"github.com/openmirror/mirrorlist/cache"
	"github.com/openmirror/mirrorlist/config"
	"github.com/openmirror/mirrorlist/database"
	"github.com/openmirror/mirrorlist/geo"
	logger "github.com/openmirror/mirrorlist/internal/mlog"
	"github.com/openmirror/mirrorlist/job"
	"github.com/openmirror/mirrorlist/registry"
	"github.com/openmirror/mirrorlist/router"
	"github.com/openmirror/mirrorlist/searcher"
	"github.com/openmirror/mirrorlist/service"
	"github.com/openmirror/mirrorlist/verify"
)

type Server struct {
	// Server configuration
	config *config.Config

	// REST server
	restServer *http.Server

	// Background job group
	job *job.Job

	// Geo resolver
	resolver geo.Resolver
}

func New(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize registry
	registry := registry.New(db.DB)

	// Initialize geo resolver
	resolver, err := geo.New(cfg.Geo)
	if err != nil {
		return nil, err
	}

	// Initialize searcher
	searcher := searcher.New(registry, resolver)

	// Initialize job
	job := job.New(cfg, registry, verify.NewFileSource(cfg.Sync.MirrorsDir))

	// Initialize cache
	cache := cache.New(cfg, db)

	// Initialize REST server
	restService := service.NewREST(cfg, registry, searcher, job.SyncMirrors, cache)
	router, err := router.Init(cfg, restService)
	if err != nil {
		return nil, err
	}
	restServer := &http.Server{
		Addr:    cfg.Server.REST.Addr,
		Handler: router,
	}

	return &Server{
		config:     cfg,
		restServer: restServer,
		job:        job,
		resolver:   resolver,
	}, nil
}

func (s *Server) Serve() error {
	// Started mirror sync job
	go func() {
		logger.Info("started sync mirrors job")
		s.job.SyncMirrors.Serve()
	}()

	// Started REST server
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if err == http.ErrServerClosed {
			return nil
		}

		return err
	}

	return nil
}

func (s *Server) Stop() {
	// Stop REST server
	if err := s.restServer.Shutdown(context.Background()); err != nil {
		logger.Errorf("rest server failed to stop: %+v", err)
	}
	logger.Info("rest server closed under request")

	// Stop mirror sync job
	s.job.SyncMirrors.Stop()
	logger.Info("sync mirrors job closed under request")

	// Close geo resolver
	if err := s.resolver.Close(); err != nil {
		logger.Errorf("geo resolver failed to close: %+v", err)
	}
}
