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

package mlerrors

import (
	"errors"
	"fmt"
	"strings"
)

// BadRequestError is a client-input error. Value carries the rejected
// input, Allowed the accepted set. It is mapped to a 400 response and
// never retried.
type BadRequestError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("unknown %s %q, allowed list of %ss: %s",
		e.Field, e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

// NewUnknownVersion reports a version outside the configured set.
func NewUnknownVersion(version string, allowed []string) error {
	return &BadRequestError{Field: "version", Value: version, Allowed: allowed}
}

// NewUnknownRepository reports a repository outside the configured set.
func NewUnknownRepository(repository string, allowed []string) error {
	return &BadRequestError{Field: "repository", Value: repository, Allowed: allowed}
}

// NewUnknownArch reports an architecture outside the configured set.
func NewUnknownArch(arch string, allowed []string) error {
	return &BadRequestError{Field: "architecture", Value: arch, Allowed: allowed}
}

// IsBadRequest checks whether err is a client-input error.
func IsBadRequest(err error) bool {
	var berr *BadRequestError
	return errors.As(err, &berr)
}
