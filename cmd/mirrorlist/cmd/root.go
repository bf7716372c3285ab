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

package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/openmirror/mirrorlist/config"
	logger "github.com/openmirror/mirrorlist/internal/mlog"
	"github.com/openmirror/mirrorlist/server"
	"github.com/openmirror/mirrorlist/version"
)

const (
	// MirrorlistEnvPrefix is the default environment prefix for Viper.
	// Both BindEnv and AutomaticEnv will use this prefix.
	MirrorlistEnvPrefix = "mirrorlist"
)

var (
	cfgFile string
	// Initialize default mirrorlist config
	cfg = config.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mirrorlist",
	Short: "geo-aware mirrorlist server",
	Long: `mirrorlist is a long-running process that selects the nearest
content mirrors for clients and keeps the mirror registry current by
periodically replacing it with freshly verified data.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		if err := logger.Init(cfg.Verbose, cfg.Console, cfg.LogDir); err != nil {
			return errors.Wrap(err, "init mirrorlist logger")
		}

		if err := cfg.Valid(); err != nil {
			return errors.Wrap(err, "validate mirrorlist config")
		}

		return runMirrorlist()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	flagSet := rootCmd.Flags()
	flagSet.StringVar(&cfgFile, "config", "", "the path of mirrorlist's configuration file")
	flagSet.BoolVar(&cfg.Console, "console", cfg.Console, "write logs to stderr instead of rotating files")
	flagSet.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print verbose log and enable golang debug info")

	rootCmd.AddCommand(version.VersionCmd)
}

func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Dir(config.DefaultConfigPath))
		viper.SetConfigName(strings.TrimSuffix(filepath.Base(config.DefaultConfigPath), filepath.Ext(config.DefaultConfigPath)))
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(MirrorlistEnvPrefix)
	viper.AutomaticEnv() // read in envionment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return errors.Wrap(err, "read mirrorlist config")
		}
	}

	// Unmarshal config
	if err := viper.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "unmarshal mirrorlist config")
	}

	return nil
}

func runMirrorlist() error {
	// Mirrorlist config values
	s, _ := yaml.Marshal(cfg)
	logger.Infof("mirrorlist configuration:\n%s", string(s))

	svr, err := server.New(cfg)
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		logger.Infof("received signal %s, stopping", sig)
		svr.Stop()
	}()

	return svr.Serve()
}
