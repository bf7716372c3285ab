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
	"net"

	"github.com/oschwald/geoip2-golang"
	"github.com/pkg/errors"

	"github.com/openmirror/mirrorlist/config"
)

// localeKey selects the english names of continents and countries.
const localeKey = "en"

// maxmind resolves addresses against a local GeoLite2 City database.
type maxmind struct {
	reader *geoip2.Reader
}

func newMaxmind(cfg *config.GeoConfig) (*maxmind, error) {
	reader, err := geoip2.Open(cfg.Database)
	if err != nil {
		return nil, errors.Wrapf(err, "open maxmind database %s", cfg.Database)
	}

	return &maxmind{reader: reader}, nil
}

func (m *maxmind) Resolve(ctx context.Context, addr string) (*Location, error) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return nil, ErrUnresolved
	}

	record, err := m.reader.City(ip)
	if err != nil {
		return nil, ErrUnresolved
	}

	continent := record.Continent.Names[localeKey]
	country := record.Country.Names[localeKey]
	if continent == "" || country == "" {
		return nil, ErrUnresolved
	}

	return &Location{
		Continent: continent,
		Country:   country,
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
	}, nil
}

func (m *maxmind) Close() error {
	return m.reader.Close()
}
