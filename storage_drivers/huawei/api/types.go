// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package api

import (
	"context"
)

//go:generate mockgen -destination=../../../mocks/mock_storage_drivers/mock_huawei/mock_api.go github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api OceanStorAPI

// OceanStorAPI is the set of array operations the drivers are written
// against. Client implements it against a live array; tests substitute a
// generated mock.
type OceanStorAPI interface {
	Login(context.Context) error
	Logout(context.Context)

	GetArrayInfo(context.Context) (*ArrayInfo, error)
	GetLicenseFeatures(context.Context) (map[string]int, error)

	GetStoragePools(context.Context) ([]StoragePool, error)
	GetPoolIDByName(context.Context, string) (string, error)

	GetLuns(context.Context) ([]Lun, error)
	GetLunIDByName(context.Context, string) (string, error)
	GetLunInfoByID(context.Context, string) (*Lun, error)
	CreateLun(context.Context, *LunCreateRequest) (*Lun, error)
	DeleteLun(context.Context, string) error
	ExtendLun(context.Context, string, int64) error

	GetSnapshotIDByName(context.Context, string) (string, error)
	GetSnapshotInfoByID(context.Context, string) (*Snapshot, error)
	CreateSnapshot(context.Context, *SnapshotCreateRequest) (*Snapshot, error)
	ActivateSnapshot(context.Context, string) error
	StopSnapshot(context.Context, string) error
	DeleteSnapshot(context.Context, string) error

	GetHostIDByName(context.Context, string) (string, error)

	CreateClonePair(context.Context, string, string, string) (string, error)
	SyncClonePair(context.Context, string) error
	GetClonePairInfo(context.Context, string) (*ClonePair, error)
	DeleteClonePair(context.Context, string) error

	CreateLunCopy(context.Context, string, string, string, string) (string, error)
	StartLunCopy(context.Context, string) error
	GetLunCopyInfo(context.Context, string) (*LunCopy, error)
	DeleteLunCopy(context.Context, string) error

	GetWorkloadTypeID(context.Context, string) (string, error)
}
