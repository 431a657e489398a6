// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package storagedrivers

import (
	"github.com/doubletao318/OpenStack-Driver/config"
)

// CommonStorageDriverConfig holds settings in common across all StorageDrivers
type CommonStorageDriverConfig struct {
	Version           int                  `json:"version"`
	StorageDriverName string               `json:"storageDriverName"`
	BackendName       string               `json:"backendName"`
	Debug             bool                 `json:"debug"`           // Unsupported!
	DebugTraceFlags   map[string]bool      `json:"debugTraceFlags"` // Example: {"api":false, "method":true}
	DriverContext     config.DriverContext `json:"-"`
}

type CommonStorageDriverConfigDefaults struct {
	Size int64 `json:"size"` // GiB
}

// HuaweiStorageDriverConfig holds settings for the OceanStor SAN driver
type HuaweiStorageDriverConfig struct {
	*CommonStorageDriverConfig

	// Array management info
	ManagementURLs     []string `json:"managementURLs"` // e.g. https://1.2.3.4:8088/deviceManager/rest
	Username           string   `json:"username"`
	Password           string   `json:"password"`
	VStoreName         string   `json:"vstoreName"`         // optional, multi-tenant arrays only
	InsecureSkipVerify bool     `json:"insecureSkipVerify"` // optional, for self-signed certificates

	// Provisioning options
	StoragePools        []string `json:"storagePools"`
	LunType             string   `json:"lunType"`             // optional, "thin" (default) or "thick"
	LunCopySpeed        string   `json:"lunCopySpeed"`        // optional, 1 (lowest) to 4 (highest)
	LunCopyWaitInterval int64    `json:"lunCopyWaitInterval"` // seconds, optional
	LunTimeout          int64    `json:"lunTimeout"`          // seconds, optional

	HuaweiStorageDriverConfigDefaults `json:"defaults"`
}

type HuaweiStorageDriverConfigDefaults struct {
	CommonStorageDriverConfigDefaults
}
