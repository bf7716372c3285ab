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

package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/openmirror/mirrorlist/config"
)

const defaultHTTPAPITimeout = 2 * time.Second

// httpAPI resolves addresses against a remote JSON geo service. A slow or
// failing service degrades to resolution-unknown.
type httpAPI struct {
	endpoint string
	client   *http.Client
}

type httpAPIResponse struct {
	Continent string  `json:"continent"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func newHTTPAPI(cfg *config.GeoConfig) *httpAPI {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPAPITimeout
	}

	return &httpAPI{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (h *httpAPI) Resolve(ctx context.Context, addr string) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(h.endpoint, addr), nil)
	if err != nil {
		return nil, ErrUnresolved
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, ErrUnresolved
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnresolved
	}

	var body httpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, ErrUnresolved
	}

	if body.Continent == "" || body.Country == "" {
		return nil, ErrUnresolved
	}

	return &Location{
		Continent: body.Continent,
		Country:   body.Country,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}, nil
}

func (h *httpAPI) Close() error {
	h.client.CloseIdleConnections()
	return nil
}
