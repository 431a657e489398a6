// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package storagedrivers

// ConfigVersion is the expected version specified in the config file
const ConfigVersion = 1

// Storage driver names specified in the config file, etc.
const (
	HuaweiSANStorageDriverName = "huawei-san"
	HuaweiFCStorageDriverName  = "huawei-fc"
)

// UnsetPool is the value reported when a scheduler host string carries no pool
const UnsetPool = ""

// DefaultVolumeSizeGiB is used when a volume request does not specify a size
const DefaultVolumeSizeGiB = int64(1)
