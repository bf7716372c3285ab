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
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	// Verbose enables debug level logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Console writes logs to stderr instead of rotating files.
	Console bool `yaml:"console" mapstructure:"console"`

	// LogDir is the directory for rotating log files.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	Server   *ServerConfig   `yaml:"server" mapstructure:"server"`
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	Cache    *CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Geo      *GeoConfig      `yaml:"geo" mapstructure:"geo"`
	Sync     *SyncConfig     `yaml:"sync" mapstructure:"sync"`
	Distro   *DistroConfig   `yaml:"distro" mapstructure:"distro"`
}

type ServerConfig struct {
	// REST server address.
	REST *RestConfig `yaml:"rest" mapstructure:"rest"`
}

type RestConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type DatabaseConfig struct {
	// Type is the dialect, either DatabaseTypeMysql or DatabaseTypePostgres.
	Type     string          `yaml:"type" mapstructure:"type"`
	Mysql    *MysqlConfig    `yaml:"mysql" mapstructure:"mysql"`
	Postgres *PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
	Redis    *RedisConfig    `yaml:"redis" mapstructure:"redis"`
}

type MysqlConfig struct {
	User      string     `yaml:"user" mapstructure:"user"`
	Password  string     `yaml:"password" mapstructure:"password"`
	Host      string     `yaml:"host" mapstructure:"host"`
	Port      int        `yaml:"port" mapstructure:"port"`
	DBName    string     `yaml:"dbname" mapstructure:"dbname"`
	TLSConfig string     `yaml:"tlsConfig" mapstructure:"tlsConfig"`
	TLS       *TLSConfig `yaml:"tls" mapstructure:"tls"`
	Migrate   bool       `yaml:"migrate" mapstructure:"migrate"`
}

type TLSConfig struct {
	CA                 string `yaml:"caCert" mapstructure:"caCert"`
	Cert               string `yaml:"cert" mapstructure:"cert"`
	Key                string `yaml:"key" mapstructure:"key"`
	InsecureSkipVerify bool   `yaml:"insecureSkipVerify" mapstructure:"insecureSkipVerify"`
}

type PostgresConfig struct {
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	SSLMode  string `yaml:"sslMode" mapstructure:"sslMode"`
	Timezone string `yaml:"timezone" mapstructure:"timezone"`
	Migrate  bool   `yaml:"migrate" mapstructure:"migrate"`
}

type RedisConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Password string `yaml:"password" mapstructure:"password"`
	CacheDB  int    `yaml:"cacheDB" mapstructure:"cacheDB"`
}

type CacheConfig struct {
	Redis *RedisCacheConfig `yaml:"redis" mapstructure:"redis"`
	Local *LocalCacheConfig `yaml:"local" mapstructure:"local"`
}

type RedisCacheConfig struct {
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type LocalCacheConfig struct {
	Size int           `yaml:"size" mapstructure:"size"`
	TTL  time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type GeoConfig struct {
	// Type selects the resolver, either GeoTypeMaxmind or GeoTypeHTTPAPI.
	Type string `yaml:"type" mapstructure:"type"`

	// Database is the path of the maxmind mmdb file.
	Database string `yaml:"database" mapstructure:"database"`

	// Endpoint of the HTTP geo API, with a %s placeholder for the address.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// Timeout bounds one resolution call. Expiry is treated as
	// resolution-unknown, not as an error.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TestAddr overrides the client address on every request. Debug only.
	TestAddr string `yaml:"testAddr" mapstructure:"testAddr"`
}

type SyncConfig struct {
	// Interval between two replacement cycles.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// MirrorsDir is the directory holding per-mirror descriptor files.
	MirrorsDir string `yaml:"mirrorsDir" mapstructure:"mirrorsDir"`

	// RunOnStart triggers one cycle right after boot.
	RunOnStart bool `yaml:"runOnStart" mapstructure:"runOnStart"`
}

type Repository struct {
	Name string `yaml:"name" mapstructure:"name"`
	Path string `yaml:"path" mapstructure:"path"`
}

type DistroConfig struct {
	// Versions is the full list of supported distribution versions.
	Versions []string `yaml:"versions" mapstructure:"versions"`

	// DuplicatedVersions are excluded from the per-arch version table.
	DuplicatedVersions []string `yaml:"duplicatedVersions" mapstructure:"duplicatedVersions"`

	// Architectures supported for installation images.
	Architectures []string `yaml:"architectures" mapstructure:"architectures"`

	// Repositories supported for mirrorlist rendering.
	Repositories []Repository `yaml:"repositories" mapstructure:"repositories"`

	// RequiredProtocols is the ordered protocol preference used when
	// building download urls, first entry preferred.
	RequiredProtocols []string `yaml:"requiredProtocols" mapstructure:"requiredProtocols"`
}

const (
	DatabaseTypeMysql    = "mysql"
	DatabaseTypePostgres = "postgres"
)

const (
	GeoTypeMaxmind = "maxmind"
	GeoTypeHTTPAPI = "httpapi"
)

const (
	// DefaultConfigPath is the default path of mirrorlist config file.
	DefaultConfigPath = "/etc/mirrorlist/mirrorlist.yaml"

	// DefaultLogDir is the default directory of log files.
	DefaultLogDir = "/var/log/mirrorlist"
)

// New returns the default config.
func New() *Config {
	return &Config{
		LogDir: DefaultLogDir,
		Server: &ServerConfig{
			REST: &RestConfig{
				Addr: ":8080",
			},
		},
		Database: &DatabaseConfig{
			Type: DatabaseTypeMysql,
			Mysql: &MysqlConfig{
				Host:    "127.0.0.1",
				Port:    3306,
				DBName:  "mirrorlist",
				Migrate: true,
			},
			Postgres: &PostgresConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				DBName:   "mirrorlist",
				SSLMode:  "disable",
				Timezone: "UTC",
				Migrate:  true,
			},
			Redis: &RedisConfig{
				Host:    "127.0.0.1",
				Port:    6379,
				CacheDB: 0,
			},
		},
		Cache: &CacheConfig{
			Redis: &RedisCacheConfig{
				TTL: 30 * time.Second,
			},
			Local: &LocalCacheConfig{
				Size: 10000,
				TTL:  10 * time.Second,
			},
		},
		Geo: &GeoConfig{
			Type:     GeoTypeMaxmind,
			Database: "/usr/share/GeoIP/GeoLite2-City.mmdb",
			Timeout:  2 * time.Second,
		},
		Sync: &SyncConfig{
			Interval:   30 * time.Minute,
			MirrorsDir: "/etc/mirrorlist/mirrors",
			RunOnStart: true,
		},
		Distro: &DistroConfig{
			Versions:           []string{"8.3", "8.4", "8"},
			DuplicatedVersions: []string{"8"},
			Architectures:      []string{"x86_64", "aarch64"},
			Repositories: []Repository{
				{Name: "BaseOS", Path: "BaseOS/x86_64/os/"},
				{Name: "AppStream", Path: "AppStream/x86_64/os/"},
				{Name: "PowerTools", Path: "PowerTools/x86_64/os/"},
				{Name: "extras", Path: "extras/x86_64/os/"},
			},
			RequiredProtocols: []string{"https", "http"},
		},
	}
}

// Valid checks the config values.
func (cfg *Config) Valid() error {
	if cfg.Server == nil || cfg.Server.REST == nil || cfg.Server.REST.Addr == "" {
		return errors.New("config requires parameter server.rest.addr")
	}

	if cfg.Database == nil {
		return errors.New("config requires parameter database")
	}

	switch cfg.Database.Type {
	case DatabaseTypeMysql:
		if cfg.Database.Mysql == nil {
			return errors.New("config requires parameter database.mysql")
		}
	case DatabaseTypePostgres:
		if cfg.Database.Postgres == nil {
			return errors.New("config requires parameter database.postgres")
		}
	default:
		return errors.Errorf("config has unsupported database type %q", cfg.Database.Type)
	}

	if cfg.Geo == nil {
		return errors.New("config requires parameter geo")
	}

	switch cfg.Geo.Type {
	case GeoTypeMaxmind:
		if cfg.Geo.Database == "" {
			return errors.New("config requires parameter geo.database")
		}
	case GeoTypeHTTPAPI:
		if cfg.Geo.Endpoint == "" {
			return errors.New("config requires parameter geo.endpoint")
		}
	default:
		return errors.Errorf("config has unsupported geo type %q", cfg.Geo.Type)
	}

	if cfg.Sync == nil || cfg.Sync.Interval <= 0 {
		return errors.New("config requires parameter sync.interval")
	}

	if cfg.Distro == nil {
		return errors.New("config requires parameter distro")
	}

	if len(cfg.Distro.Versions) == 0 {
		return errors.New("config requires parameter distro.versions")
	}

	if len(cfg.Distro.Repositories) == 0 {
		return errors.New("config requires parameter distro.repositories")
	}

	if len(cfg.Distro.RequiredProtocols) == 0 {
		return errors.New("config requires parameter distro.requiredProtocols")
	}

	return nil
}

// RepositoryPath returns the relative path of a repository by name.
func (d *DistroConfig) RepositoryPath(name string) (string, bool) {
	for _, repo := range d.Repositories {
		if repo.Name == name {
			return repo.Path, true
		}
	}

	return "", false
}

// RepositoryNames returns the configured repository names in order.
func (d *DistroConfig) RepositoryNames() []string {
	names := make([]string, 0, len(d.Repositories))
	for _, repo := range d.Repositories {
		names = append(names, repo.Name)
	}

	return names
}

// HasVersion checks whether version is supported.
func (d *DistroConfig) HasVersion(version string) bool {
	for _, v := range d.Versions {
		if v == version {
			return true
		}
	}

	return false
}

// HasArch checks whether arch is supported.
func (d *DistroConfig) HasArch(arch string) bool {
	for _, a := range d.Architectures {
		if a == arch {
			return true
		}
	}

	return false
}
