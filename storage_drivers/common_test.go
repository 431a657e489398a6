// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package storagedrivers

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestValidateCommonSettings(t *testing.T) {
	ctx := context.Background()

	configJSON := `
	{
	    "version": 1,
	    "storageDriverName": "huawei-san",
	    "backendName": "oceanstor_1",
	    "debugTraceFlags": {"method": true, "api": false}
	}`

	commonConfig, err := ValidateCommonSettings(ctx, configJSON)

	assert.NoError(t, err)
	assert.Equal(t, 1, commonConfig.Version)
	assert.Equal(t, HuaweiSANStorageDriverName, commonConfig.StorageDriverName)
	assert.Equal(t, "oceanstor_1", commonConfig.BackendName)
	assert.True(t, commonConfig.DebugTraceFlags["method"])
	assert.False(t, commonConfig.DebugTraceFlags["api"])
}

func TestValidateCommonSettings_Negative(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		configJSON string
	}{
		{name: "invalid JSON", configJSON: `{"version" 1}`},
		{name: "missing driver name", configJSON: `{"version": 1}`},
		{name: "wrong version", configJSON: `{"version": 2, "storageDriverName": "huawei-san"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			commonConfig, err := ValidateCommonSettings(ctx, tc.configJSON)
			assert.Error(t, err)
			assert.Nil(t, commonConfig)
		})
	}
}

func TestHuaweiConfigDecode(t *testing.T) {
	configJSON := `
	{
	    "version": 1,
	    "storageDriverName": "huawei-san",
	    "managementURLs": ["https://1.2.3.4:8088/deviceManager/rest"],
	    "username": "admin",
	    "password": "secret",
	    "vstoreName": "vstore1",
	    "storagePools": ["StoragePool001", "StoragePool002"],
	    "lunCopySpeed": "3",
	    "defaults": {"size": 10}
	}`

	commonConfig, err := ValidateCommonSettings(context.Background(), configJSON)
	assert.NoError(t, err)

	config := &HuaweiStorageDriverConfig{}
	config.CommonStorageDriverConfig = commonConfig
	assert.NoError(t, json.Unmarshal([]byte(configJSON), config))

	assert.Equal(t, []string{"https://1.2.3.4:8088/deviceManager/rest"}, config.ManagementURLs)
	assert.Equal(t, "admin", config.Username)
	assert.Equal(t, "vstore1", config.VStoreName)
	assert.Equal(t, []string{"StoragePool001", "StoragePool002"}, config.StoragePools)
	assert.Equal(t, "3", config.LunCopySpeed)
	assert.Equal(t, int64(10), config.Size)
}
