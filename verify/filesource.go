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
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	logger "github.com/openmirror/mirrorlist/internal/mlog"
)

// mirrorFile is the on-disk descriptor layout, one file per mirror.
type mirrorFile struct {
	Name      string `yaml:"name"`
	Continent string `yaml:"continent"`
	Country   string `yaml:"country"`
	IP        string `yaml:"ip"`
	Location  struct {
		Lat float64 `yaml:"lat"`
		Lon float64 `yaml:"lon"`
	} `yaml:"location"`
	Status          string            `yaml:"status"`
	UpdateFrequency string            `yaml:"update_frequency"`
	Sponsor         string            `yaml:"sponsor"`
	SponsorURL      string            `yaml:"sponsor_url"`
	Email           string            `yaml:"email"`
	Addresses       map[string]string `yaml:"address"`
}

// fileSource loads verified mirror descriptors from a directory of YAML
// files maintained by the verification subsystem.
type fileSource struct {
	dir string
}

// NewFileSource returns a Verifier reading descriptors from dir.
func NewFileSource(dir string) Verifier {
	return &fileSource{dir: dir}
}

func (f *fileSource) VerifiedMirrors(ctx context.Context) ([]Descriptor, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read mirrors dir %s", f.dir)
	}

	var descriptors []Descriptor
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}

		path := filepath.Join(f.dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read mirror file %s", path)
		}

		var file mirrorFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, errors.Wrapf(err, "unmarshal mirror file %s", path)
		}

		descriptors = append(descriptors, file.toDescriptor())
	}

	return descriptors, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}

func (f *mirrorFile) toDescriptor() Descriptor {
	var updateFrequency time.Time
	if f.UpdateFrequency != "" {
		parsed, err := time.Parse(time.RFC3339, f.UpdateFrequency)
		if err != nil {
			logger.Warnf("mirror %s has unparsable update_frequency %q", f.Name, f.UpdateFrequency)
		} else {
			updateFrequency = parsed
		}
	}

	return Descriptor{
		Name:            f.Name,
		Continent:       f.Continent,
		Country:         f.Country,
		IP:              f.IP,
		Latitude:        f.Location.Lat,
		Longitude:       f.Location.Lon,
		Status:          f.Status,
		UpdateFrequency: updateFrequency,
		Sponsor:         f.Sponsor,
		SponsorURL:      f.SponsorURL,
		Email:           f.Email,
		Addresses:       f.Addresses,
	}
}
