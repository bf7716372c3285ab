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
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/openmirror/mirrorlist/config"
)

func TestHTTPAPI_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		addr      string
		responder httpmock.Responder
		expect    func(t *testing.T, location *Location, err error)
	}{
		{
			name: "resolved address",
			addr: "77.121.201.30",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, httpAPIResponse{
				Continent: "Europe",
				Country:   "Ukraine",
				Latitude:  50.45,
				Longitude: 30.52,
			}),
			expect: func(t *testing.T, location *Location, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("Europe", location.Continent)
				assert.Equal("Ukraine", location.Country)
				assert.Equal(50.45, location.Latitude)
				assert.Equal(30.52, location.Longitude)
			},
		},
		{
			name: "service reports no geo data",
			addr: "10.0.0.1",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, httpAPIResponse{
				Continent: "",
				Country:   "",
			}),
			expect: func(t *testing.T, location *Location, err error) {
				assert := assert.New(t)
				assert.Nil(location)
				assert.ErrorIs(err, ErrUnresolved)
			},
		},
		{
			name:      "service error",
			addr:      "77.121.201.30",
			responder: httpmock.NewStringResponder(http.StatusInternalServerError, "boom"),
			expect: func(t *testing.T, location *Location, err error) {
				assert := assert.New(t)
				assert.Nil(location)
				assert.ErrorIs(err, ErrUnresolved)
			},
		},
		{
			name:      "malformed body",
			addr:      "77.121.201.30",
			responder: httpmock.NewStringResponder(http.StatusOK, "not json"),
			expect: func(t *testing.T, location *Location, err error) {
				assert := assert.New(t)
				assert.Nil(location)
				assert.ErrorIs(err, ErrUnresolved)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := newHTTPAPI(&config.GeoConfig{
				Endpoint: "http://geo.example.com/json/%s",
			})
			httpmock.ActivateNonDefault(resolver.client)
			defer httpmock.DeactivateAndReset()

			httpmock.RegisterResponder(http.MethodGet, "http://geo.example.com/json/"+tc.addr, tc.responder)

			location, err := resolver.Resolve(context.Background(), tc.addr)
			tc.expect(t, location, err)
		})
	}
}
