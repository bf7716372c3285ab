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

package job

import (
	"github.com/openmirror/mirrorlist/config"
	"github.com/openmirror/mirrorlist/registry"
	"github.com/openmirror/mirrorlist/verify"
)

// Job is the background job group of the server.
type Job struct {
	SyncMirrors SyncMirrors
}

// New returns the job group.
func New(cfg *config.Config, registry registry.Registry, verifier verify.Verifier) *Job {
	return &Job{
		SyncMirrors: newSyncMirrors(cfg, registry, verifier),
	}
}
