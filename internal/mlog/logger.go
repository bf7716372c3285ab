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

package logger

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	CoreLogger *zap.SugaredLogger
	GinLogger  *zap.SugaredLogger
	GormLogger *zap.SugaredLogger
	JobLogger  *zap.SugaredLogger
)

func init() {
	log, err := CreateConsoleLogger()
	if err == nil {
		sugar := log.Sugar()
		SetCoreLogger(sugar)
		SetGinLogger(sugar)
		SetGormLogger(sugar)
		SetJobLogger(sugar)
	}
}

// Init replaces the default console loggers with rotating file loggers
// under dir. With console set, loggers keep writing to stderr.
func Init(verbose, console bool, dir string) error {
	if verbose {
		SetCoreLevel(zapcore.DebugLevel)
	}

	if console {
		return nil
	}

	var meta = []struct {
		fileName string
		set      func(*zap.SugaredLogger)
	}{
		{CoreLogFileName, SetCoreLogger},
		{GinLogFileName, SetGinLogger},
		{GormLogFileName, SetGormLogger},
		{JobLogFileName, SetJobLogger},
	}

	for _, m := range meta {
		log, err := CreateLogger(filepath.Join(dir, m.fileName), false)
		if err != nil {
			return err
		}
		m.set(log.Sugar())
	}

	return nil
}

func SetCoreLogger(log *zap.SugaredLogger) {
	CoreLogger = log
}

func SetGinLogger(log *zap.SugaredLogger) {
	GinLogger = log
}

func SetGormLogger(log *zap.SugaredLogger) {
	GormLogger = log
}

func SetJobLogger(log *zap.SugaredLogger) {
	JobLogger = log
}

func With(args ...any) *zap.SugaredLogger {
	return CoreLogger.With(args...)
}

func WithMirror(name, country string) *zap.SugaredLogger {
	return CoreLogger.With("mirror", name, "country", country)
}

func Infof(template string, args ...any) {
	CoreLogger.Infof(template, args...)
}

func Info(args ...any) {
	CoreLogger.Info(args...)
}

func Warnf(template string, args ...any) {
	CoreLogger.Warnf(template, args...)
}

func Warn(args ...any) {
	CoreLogger.Warn(args...)
}

func Errorf(template string, args ...any) {
	CoreLogger.Errorf(template, args...)
}

func Error(args ...any) {
	CoreLogger.Error(args...)
}

func Debugf(template string, args ...any) {
	CoreLogger.Debugf(template, args...)
}

func Fatalf(template string, args ...any) {
	CoreLogger.Fatalf(template, args...)
}

func Fatal(args ...any) {
	CoreLogger.Fatal(args...)
}
