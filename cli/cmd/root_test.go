// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, configJSON string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "backend.json")
	require.NoError(t, os.WriteFile(path, []byte(configJSON), 0o600))
	return path
}

func TestLoadBackendConfig(t *testing.T) {
	configJSON := `{
		"version": 1,
		"storageDriverName": "huawei-san",
		"managementURLs": ["https://1.2.3.4:8088/deviceManager/rest", "https://1.2.3.5:8088/deviceManager/rest"],
		"username": "admin",
		"password": "from-file",
		"vstoreName": "tenant1",
		"storagePools": ["StoragePool001"]
	}`

	previous := ConfigFile
	ConfigFile = writeTestConfig(t, configJSON)
	defer func() { ConfigFile = previous }()

	config, err := loadBackendConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://1.2.3.4:8088/deviceManager/rest",
		"https://1.2.3.5:8088/deviceManager/rest",
	}, config.ManagementURLs)
	assert.Equal(t, "admin", config.Username)
	assert.Equal(t, "from-file", config.Password)
	assert.Equal(t, "tenant1", config.VStoreName)
	assert.False(t, config.InsecureSkipVerify)
	assert.Equal(t, []string{"StoragePool001"}, config.StoragePools)
}

func TestLoadBackendConfig_EnvOverride(t *testing.T) {
	configJSON := `{
		"managementURLs": ["https://1.2.3.4:8088/deviceManager/rest"],
		"username": "admin",
		"password": "from-file"
	}`

	previous := ConfigFile
	ConfigFile = writeTestConfig(t, configJSON)
	defer func() { ConfigFile = previous }()

	// Credentials from the environment beat the file.
	t.Setenv("HW_PASSWORD", "from-env")

	config, err := loadBackendConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.Password)
	assert.Equal(t, "admin", config.Username)
}

func TestLoadBackendConfig_MissingFile(t *testing.T) {
	previous := ConfigFile
	ConfigFile = filepath.Join(t.TempDir(), "missing.json")
	defer func() { ConfigFile = previous }()

	_, err := loadBackendConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read backend configuration")
}

func TestGetExitCodeFromError(t *testing.T) {
	assert.Equal(t, ExitCodeSuccess, GetExitCodeFromError(nil))
	assert.Equal(t, ExitCodeFailure, GetExitCodeFromError(errors.New("boom")))
}
