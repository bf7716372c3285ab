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

type MirrorURL struct {
	Model
	MirrorID uint   `gorm:"column:mirror_id;index:uk_mirror_url,unique;not null;comment:mirror id" json:"mirror_id"`
	Type     string `gorm:"column:type;type:varchar(32);index:uk_mirror_url,unique;not null;comment:protocol type" json:"type"`
	URL      string `gorm:"column:url;type:varchar(1024);not null;comment:base address" json:"url"`
}
