// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/algorand/go-lists/dynamic"
	"github.com/algorand/go-lists/serr"
	"github.com/algorand/go-lists/util/codecs"
)

// ConfigFilename is the name of the config file found in the data directory.
const ConfigFilename = "config.json"

// Local holds the per-data-directory settings of the list tools.
type Local struct {
	// Version tracks the current version of the defaults so a stored file can
	// be told apart from one written by an older release.
	Version uint32

	// ListInitialCapacity is the number of slots the first push allocates in
	// a growable array.
	ListInitialCapacity int

	// ListGrowthFactor multiplies a full array's capacity.
	ListGrowthFactor float64

	// BaseLoggerDebugLevel is the logging.Level of the command logger, 0 (panic)
	// through 5 (debug).
	BaseLoggerDebugLevel uint32

	// LogSizeLimit is the size in bytes at which the live log file is archived.
	LogSizeLimit uint64

	// LogArchiveName is the file name, relative to the data directory, of the
	// archived log.
	LogArchiveName string
}

var defaultLocal = Local{
	Version:              1,
	ListInitialCapacity:  dynamic.InitialCapacity,
	ListGrowthFactor:     dynamic.GrowthFactor,
	BaseLoggerDebugLevel: 3,
	LogSizeLimit:         1073741824,
	LogArchiveName:       "listsum.archive.log",
}

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

// LoadConfigFromDisk returns the defaults overridden by the config file in
// custom. A missing file yields the defaults.
func LoadConfigFromDisk(custom string) (c Local, err error) {
	c, err = mergeConfigFromFile(filepath.Join(custom, ConfigFilename), defaultLocal)
	if errors.Is(err, os.ErrNotExist) {
		return defaultLocal, nil
	}
	return
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	err := codecs.LoadObjectFromFile(configpath, &source)
	if errors.Is(err, os.ErrNotExist) {
		return source, err
	}
	if err != nil {
		return source, serr.Wrap(err, "cannot parse config", "path", configpath)
	}
	return source, nil
}

// SaveToDisk writes the non-default settings to the config file in root.
func (cfg Local) SaveToDisk(root string) error {
	configpath := filepath.Join(root, ConfigFilename)
	filename := os.ExpandEnv(configpath)
	return cfg.SaveToFile(filename)
}

// SaveToFile writes the non-default settings, and always the Version, to filename.
func (cfg Local) SaveToFile(filename string) error {
	var alwaysInclude []string
	alwaysInclude = append(alwaysInclude, "Version")
	return codecs.SaveNonDefaultValuesToFile(filename, cfg, defaultLocal, alwaysInclude, true)
}

// DynamicPolicy returns the growth policy for growable arrays.
func (cfg Local) DynamicPolicy() dynamic.Policy {
	return dynamic.Policy{InitialCapacity: cfg.ListInitialCapacity, GrowthFactor: cfg.ListGrowthFactor}
}

// Validate reports the first setting that cannot be used.
func (cfg Local) Validate() error {
	if err := cfg.DynamicPolicy().Validate(); err != nil {
		return serr.Wrap(ErrInvalidConfig, err.Error(), "cause", err)
	}
	if cfg.BaseLoggerDebugLevel > 5 {
		return serr.Wrap(ErrInvalidConfig, "log level out of range", "BaseLoggerDebugLevel", cfg.BaseLoggerDebugLevel)
	}
	if cfg.LogSizeLimit == 0 {
		return serr.Wrap(ErrInvalidConfig, "log size limit must be positive")
	}
	if cfg.LogArchiveName == "" || filepath.Base(cfg.LogArchiveName) != cfg.LogArchiveName {
		return serr.Wrap(ErrInvalidConfig, "log archive name must be a plain file name", "LogArchiveName", cfg.LogArchiveName)
	}
	return nil
}
