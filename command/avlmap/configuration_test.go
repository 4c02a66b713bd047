// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
)

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "avlmap-config")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "avlmap.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    check = true,
    preload = {
        { key = "x", value = "10" },
        { key = "y", value = "20" },
    },
    logging = {
        file = "test.log",
        count = 3,
    },
}
`)
	defer os.RemoveAll(dir)

	config, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	dir, _ = filepath.EvalSymlinks(dir)
	dataDirectory, _ := filepath.EvalSymlinks(config.DataDirectory)
	assert.Equal(t, dir, dataDirectory, "data directory")
	assert.True(t, config.Check, "check")
	assert.Equal(t, []Pair{{"x", "10"}, {"y", "20"}}, config.Preload, "preload")
	assert.Equal(t, "test.log", config.Logging.File, "log file")
	assert.Equal(t, 3, config.Logging.Count, "log count")
	assert.Equal(t, defaultLogSize, config.Logging.Size, "log size default")
	assert.Equal(t, filepath.Join(config.DataDirectory, defaultLogDirectory), config.Logging.Directory, "log directory")
	assert.DirExists(t, config.Logging.Directory, "log directory created")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "" }`)
	defer os.RemoveAll(dir)
	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidDataDirectory, err, "empty data directory")

	dir2, fileName2 := writeConfiguration(t, `return { data_directory = "/does/not/exist" }`)
	defer os.RemoveAll(dir2)
	_, err = getConfiguration(fileName2)
	assert.Equal(t, fault.ErrInvalidDataDirectory, err, "missing data directory")

	dir3, fileName3 := writeConfiguration(t, `return { logging = { file = "sub/x.log" } }`)
	defer os.RemoveAll(dir3)
	_, err = getConfiguration(fileName3)
	assert.NotNil(t, err, "log file with path")

	_, err = getConfiguration(filepath.Join(dir, "missing.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")
}

func TestSelectConfigurationDefaults(t *testing.T) {
	config, err := selectConfiguration(nil)
	if nil != err {
		t.Fatalf("default configuration error: %s", err)
	}

	assert.Equal(t, os.TempDir(), config.DataDirectory, "data directory")
	assert.Equal(t, os.TempDir(), config.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, config.Logging.File, "log file")
	assert.False(t, config.Check, "check")
	assert.Empty(t, config.Preload, "preload")
	assert.Equal(t, defaultLogLevels, config.Logging.Levels, "log levels")

	// levels are a copy so a configuration file cannot alter the defaults
	config.Logging.Levels["main"] = "trace"
	assert.Equal(t, "info", defaultLogLevels["main"], "shared default levels")
}

func TestSelectConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { check = true }`)
	defer os.RemoveAll(dir)

	config, err := selectConfiguration([]string{fileName})
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}
	assert.True(t, config.Check, "check")

	_, err = selectConfiguration([]string{fileName, fileName})
	assert.Equal(t, fault.ErrMultipleConfigFiles, err, "two config files")
}
