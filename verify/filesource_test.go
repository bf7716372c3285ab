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

package verify

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const mirrorYAML = `name: de-1.mirror.example.com
continent: Europe
country: Germany
ip: 203.0.113.10
location:
  lat: 52.52
  lon: 13.4
status: active
update_frequency: "2023-05-01T10:00:00Z"
sponsor: Example GmbH
sponsor_url: https://example.com
email: admin@example.com
address:
  https: https://de-1.mirror.example.com/almalinux
  http: http://de-1.mirror.example.com/almalinux
  rsync: rsync://de-1.mirror.example.com/almalinux
`

const expiredMirrorYAML = `name: br-1.mirror.example.com
continent: South America
country: Brazil
status: expired
address:
  http: http://br-1.mirror.example.com/almalinux
`

func TestFileSource_VerifiedMirrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	assert.NoError(os.WriteFile(filepath.Join(dir, "de-1.yml"), []byte(mirrorYAML), 0o644))
	assert.NoError(os.WriteFile(filepath.Join(dir, "br-1.yaml"), []byte(expiredMirrorYAML), 0o644))
	assert.NoError(os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	descriptors, err := NewFileSource(dir).VerifiedMirrors(context.Background())
	assert.NoError(err)
	assert.Len(descriptors, 2)

	// os.ReadDir yields lexical order.
	expired := descriptors[0]
	assert.Equal("br-1.mirror.example.com", expired.Name)
	assert.Equal("expired", expired.Status)
	assert.Equal(map[string]string{"http": "http://br-1.mirror.example.com/almalinux"}, expired.Addresses)

	active := descriptors[1]
	assert.Equal("de-1.mirror.example.com", active.Name)
	assert.Equal("Europe", active.Continent)
	assert.Equal("Germany", active.Country)
	assert.Equal(52.52, active.Latitude)
	assert.Equal(13.4, active.Longitude)
	assert.Equal("active", active.Status)
	assert.Equal(time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC), active.UpdateFrequency)
	assert.Equal("Example GmbH", active.Sponsor)
	assert.Equal("https://example.com", active.SponsorURL)
	assert.Equal("admin@example.com", active.Email)
	assert.Len(active.Addresses, 3)
}

func TestFileSource_VerifiedMirrorsMissingDir(t *testing.T) {
	assert := assert.New(t)

	_, err := NewFileSource("/nonexistent/mirrors").VerifiedMirrors(context.Background())
	assert.Error(err)
}

func TestFileSource_VerifiedMirrorsBadUpdateFrequency(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	content := `name: foo
update_frequency: "three days ago"
address:
  https: https://foo.example.com/almalinux
`
	assert.NoError(os.WriteFile(filepath.Join(dir, "foo.yml"), []byte(content), 0o644))

	descriptors, err := NewFileSource(dir).VerifiedMirrors(context.Background())
	assert.NoError(err)
	assert.Len(descriptors, 1)
	assert.True(descriptors[0].UpdateFrequency.IsZero())
}
