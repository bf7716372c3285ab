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

package models

import "time"

type Mirror struct {
	Model
	Name            string      `gorm:"column:name;type:varchar(256);uniqueIndex;not null;comment:mirror name" json:"name"`
	Continent       string      `gorm:"column:continent;type:varchar(256);index;comment:continent name" json:"continent"`
	Country         string      `gorm:"column:country;type:varchar(256);index;comment:country name" json:"country"`
	IP              string      `gorm:"column:ip;type:varchar(256);comment:ip address" json:"ip"`
	Latitude        float64     `gorm:"column:latitude;comment:latitude in degrees" json:"latitude"`
	Longitude       float64     `gorm:"column:longitude;comment:longitude in degrees" json:"longitude"`
	IsExpired       bool        `gorm:"column:is_expired;not null;default:false;comment:expired flag" json:"is_expired"`
	UpdateFrequency time.Time   `gorm:"column:update_frequency;type:timestamp;comment:last reported update time" json:"update_frequency"`
	SponsorName     string      `gorm:"column:sponsor_name;type:varchar(256);comment:sponsor name" json:"sponsor_name"`
	SponsorURL      string      `gorm:"column:sponsor_url;type:varchar(1024);comment:sponsor url" json:"sponsor_url"`
	Email           string      `gorm:"column:email;type:varchar(256);comment:contact email" json:"email"`
	URLs            []MirrorURL `gorm:"constraint:OnDelete:CASCADE" json:"urls"`
}

// URLByType returns the mirror address for a protocol type.
func (m *Mirror) URLByType(protocol string) (string, bool) {
	for _, u := range m.URLs {
		if u.Type == protocol {
			return u.URL, true
		}
	}

	return "", false
}

// PreferredURL returns the first address matching the ordered protocol
// preference. Mirrors serving none of the protocols report false.
func (m *Mirror) PreferredURL(protocols []string) (string, bool) {
	for _, protocol := range protocols {
		if url, ok := m.URLByType(protocol); ok {
			return url, true
		}
	}

	return "", false
}
