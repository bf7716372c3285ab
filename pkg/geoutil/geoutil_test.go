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

package geoutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expect                 func(t *testing.T, km float64)
	}{
		{
			name: "same point",
			lat1: 52.52, lon1: 13.40, lat2: 52.52, lon2: 13.40,
			expect: func(t *testing.T, km float64) {
				assert := assert.New(t)
				assert.Equal(float64(0), km)
			},
		},
		{
			name: "berlin to paris",
			lat1: 52.5200, lon1: 13.4050, lat2: 48.8566, lon2: 2.3522,
			expect: func(t *testing.T, km float64) {
				assert := assert.New(t)
				assert.InDelta(878, km, 5)
			},
		},
		{
			name: "frankfurt to sao paulo",
			lat1: 50.1109, lon1: 8.6821, lat2: -23.5505, lon2: -46.6333,
			expect: func(t *testing.T, km float64) {
				assert := assert.New(t)
				assert.InDelta(9784, km, 50)
			},
		},
		{
			name: "symmetric",
			lat1: 35.6762, lon1: 139.6503, lat2: 40.7128, lon2: -74.0060,
			expect: func(t *testing.T, km float64) {
				assert := assert.New(t)
				assert.Equal(HaversineDistance(40.7128, -74.0060, 35.6762, 139.6503), km)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, HaversineDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2))
		})
	}
}

func TestSquaredChordPreservesNearbyOrdering(t *testing.T) {
	assert := assert.New(t)

	// Reference point Berlin; candidates inside one continent in
	// increasing great-circle distance.
	refLat, refLon := 52.5200, 13.4050
	candidates := []struct {
		name     string
		lat, lon float64
	}{
		{"prague", 50.0755, 14.4378},
		{"paris", 48.8566, 2.3522},
		{"madrid", 40.4168, -3.7038},
		{"lisbon", 38.7223, -9.1393},
	}

	for i := 1; i < len(candidates); i++ {
		prev, cur := candidates[i-1], candidates[i]
		assert.Less(
			HaversineDistance(refLat, refLon, prev.lat, prev.lon),
			HaversineDistance(refLat, refLon, cur.lat, cur.lon),
		)
		assert.Less(
			SquaredChord(refLat, refLon, prev.lat, prev.lon),
			SquaredChord(refLat, refLon, cur.lat, cur.lon),
		)
	}
}
