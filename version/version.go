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
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set by build -ldflags.
var (
	GitVersion = "v1.0.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

var VersionCmd = &cobra.Command{
	Use:               "version",
	Short:             "show version",
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("GitVersion: %s\n", GitVersion)
		fmt.Printf("GitCommit:  %s\n", GitCommit)
		fmt.Printf("BuildTime:  %s\n", BuildTime)
		fmt.Printf("GoVersion:  %s\n", runtime.Version())
		fmt.Printf("Platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
