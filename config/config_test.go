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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-lists/dynamic"
	"github.com/algorand/go-lists/test/partitiontest"
)

func TestLocal_DefaultsAreValid(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	cfg := GetDefaultLocal()
	require.NoError(t, cfg.Validate())
	require.Equal(t, dynamic.DefaultPolicy(), cfg.DynamicPolicy())
}

func TestLocal_LoadMissingConfigGivesDefaults(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	cfg, err := LoadConfigFromDisk(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, GetDefaultLocal(), cfg)
}

func TestLocal_SaveLoadRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	dir := t.TempDir()
	cfg := GetDefaultLocal()
	cfg.ListInitialCapacity = 3
	cfg.ListGrowthFactor = 1.5
	require.NoError(t, cfg.SaveToDisk(dir))

	content, err := os.ReadFile(filepath.Join(dir, ConfigFilename))
	require.NoError(t, err)
	require.Contains(t, string(content), "\"Version\": 1")
	require.Contains(t, string(content), "\"ListGrowthFactor\": 1.5")
	require.NotContains(t, string(content), "LogArchiveName")

	loaded, err := LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
	require.Equal(t, dynamic.Policy{InitialCapacity: 3, GrowthFactor: 1.5}, loaded.DynamicPolicy())
}

func TestLocal_LoadMergesOverDefaults(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"BaseLoggerDebugLevel": 5}`), 0600))

	loaded, err := LoadConfigFromDisk(dir)
	require.NoError(t, err)
	want := GetDefaultLocal()
	want.BaseLoggerDebugLevel = 5
	require.Equal(t, want, loaded)
}

func TestLocal_LoadMalformed(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"ListGrowthFactor": "fast"}`), 0600))

	_, err := LoadConfigFromDisk(dir)
	require.ErrorContains(t, err, "cannot parse config")
}

func TestLocal_Validate(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Local)
	}{
		{"zero initial capacity", func(c *Local) { c.ListInitialCapacity = 0 }},
		{"growth factor one", func(c *Local) { c.ListGrowthFactor = 1 }},
		{"log level", func(c *Local) { c.BaseLoggerDebugLevel = 6 }},
		{"log size", func(c *Local) { c.LogSizeLimit = 0 }},
		{"archive path", func(c *Local) { c.LogArchiveName = "../archive.log" }},
	}
	for _, tc := range cases {
		cfg := GetDefaultLocal()
		tc.mutate(&cfg)
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, tc.name)
	}
}

func TestFormatVersionAndLicense(t *testing.T) {
	partitiontest.PartitionTest(t)

	v := Version{Major: 1, Minor: 2, BuildNumber: 3, Branch: "main", Channel: "stable", CommitHash: "abc"}
	require.Equal(t, "1.2.3", v.String())
	require.Equal(t, uint64(1)<<40|uint64(2)<<24|3, v.AsUInt64())

	saved := GetCurrentVersion()
	defer SetCurrentVersion(saved)
	SetCurrentVersion(v)
	require.Contains(t, FormatVersionAndLicense(), "1.2.3.stable [main] (commit #abc)")
	require.Contains(t, FormatVersionAndLicense(), "AGPLv3.0")
}
