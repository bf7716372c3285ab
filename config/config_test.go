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

package config

import (
	"os"
	"testing"

	"github.com/mitchellh/mapstructure"
	testifyassert "github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestConfig_Load(t *testing.T) {
	assert := testifyassert.New(t)

	config := &Config{}
	contentYAML, err := os.ReadFile("./testdata/mirrorlist.yaml")
	assert.NoError(err)

	var dataYAML map[string]interface{}
	assert.NoError(yaml.Unmarshal(contentYAML, &dataYAML))
	assert.NoError(mapstructure.Decode(dataYAML, &config))

	assert.True(config.Verbose)
	assert.Equal("/tmp/mirrorlist/log", config.LogDir)
	assert.Equal(":8080", config.Server.REST.Addr)
	assert.Equal(DatabaseTypeMysql, config.Database.Type)
	assert.Equal("foo", config.Database.Mysql.User)
	assert.Equal(6379, config.Database.Redis.Port)
	assert.Equal(GeoTypeMaxmind, config.Geo.Type)
	assert.Equal([]string{"8.3", "8.4", "8"}, config.Distro.Versions)
	assert.Equal([]string{"8"}, config.Distro.DuplicatedVersions)
	assert.Equal([]string{"https", "http"}, config.Distro.RequiredProtocols)
	assert.Equal([]Repository{
		{Name: "BaseOS", Path: "BaseOS/x86_64/os/"},
		{Name: "AppStream", Path: "AppStream/x86_64/os/"},
	}, config.Distro.Repositories)
}

func TestConfig_Valid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "default config is valid",
			mutate: func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := testifyassert.New(t)
				assert.NoError(err)
			},
		},
		{
			name: "missing rest addr",
			mutate: func(cfg *Config) {
				cfg.Server.REST.Addr = ""
			},
			expect: func(t *testing.T, err error) {
				assert := testifyassert.New(t)
				assert.EqualError(err, "config requires parameter server.rest.addr")
			},
		},
		{
			name: "unsupported database type",
			mutate: func(cfg *Config) {
				cfg.Database.Type = "sqlite"
			},
			expect: func(t *testing.T, err error) {
				assert := testifyassert.New(t)
				assert.Error(err)
			},
		},
		{
			name: "maxmind without database path",
			mutate: func(cfg *Config) {
				cfg.Geo.Database = ""
			},
			expect: func(t *testing.T, err error) {
				assert := testifyassert.New(t)
				assert.EqualError(err, "config requires parameter geo.database")
			},
		},
		{
			name: "httpapi without endpoint",
			mutate: func(cfg *Config) {
				cfg.Geo.Type = GeoTypeHTTPAPI
				cfg.Geo.Endpoint = ""
			},
			expect: func(t *testing.T, err error) {
				assert := testifyassert.New(t)
				assert.EqualError(err, "config requires parameter geo.endpoint")
			},
		},
		{
			name: "no versions",
			mutate: func(cfg *Config) {
				cfg.Distro.Versions = nil
			},
			expect: func(t *testing.T, err error) {
				assert := testifyassert.New(t)
				assert.EqualError(err, "config requires parameter distro.versions")
			},
		},
		{
			name: "no required protocols",
			mutate: func(cfg *Config) {
				cfg.Distro.RequiredProtocols = nil
			},
			expect: func(t *testing.T, err error) {
				assert := testifyassert.New(t)
				assert.EqualError(err, "config requires parameter distro.requiredProtocols")
			},
		},
		{
			name: "no sync interval",
			mutate: func(cfg *Config) {
				cfg.Sync.Interval = 0
			},
			expect: func(t *testing.T, err error) {
				assert := testifyassert.New(t)
				assert.EqualError(err, "config requires parameter sync.interval")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.mutate(cfg)
			tc.expect(t, cfg.Valid())
		})
	}
}

func TestDistroConfig_Lookups(t *testing.T) {
	assert := testifyassert.New(t)

	distro := New().Distro
	assert.True(distro.HasVersion("8.3"))
	assert.False(distro.HasVersion("9"))
	assert.True(distro.HasArch("x86_64"))
	assert.False(distro.HasArch("riscv64"))

	path, ok := distro.RepositoryPath("BaseOS")
	assert.True(ok)
	assert.Equal("BaseOS/x86_64/os/", path)

	_, ok = distro.RepositoryPath("nonexistent-repo")
	assert.False(ok)

	assert.Equal([]string{"BaseOS", "AppStream", "PowerTools", "extras"}, distro.RepositoryNames())
}
