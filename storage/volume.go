// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

// Package storage holds the service-side object model handed to the driver:
// volumes, snapshots and their metadata records, shaped the way the block
// storage service shapes them.
package storage

import (
	"strings"
)

// MetadataEntry is a single key/value row stored alongside a volume or
// snapshot. Services that keep metadata in discrete rows deliver it as a
// slice of these instead of a map.
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Volume is the service-side view of a block volume. Metadata may arrive
// either as a structured map or as key/value rows, never both; which field
// is populated decides how it is read.
type Volume struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name,omitempty"`
	Size                int64             `json:"size"` // GiB
	Host                string            `json:"host,omitempty"`
	ProviderLocation    string            `json:"provider_location,omitempty"`
	Metadata            map[string]string `json:"metadata,omitempty"`
	VolumeMetadata      []MetadataEntry   `json:"volume_metadata,omitempty"`
	AdminMetadata       map[string]string `json:"admin_metadata,omitempty"`
	VolumeAdminMetadata []MetadataEntry   `json:"volume_admin_metadata,omitempty"`
}

// Snapshot is the service-side view of a volume snapshot.
type Snapshot struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	VolumeID         string            `json:"volume_id,omitempty"`
	Volume           *Volume           `json:"volume,omitempty"`
	Size             int64             `json:"size"` // GiB
	ProviderLocation string            `json:"provider_location,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	SnapshotMetadata []MetadataEntry   `json:"snapshot_metadata,omitempty"`
}

// PoolFromHost extracts the pool component from a scheduler host string of
// the form host@backend#pool. The empty string means the host carries no
// pool information.
func PoolFromHost(host string) string {
	if idx := strings.Index(host, "#"); idx >= 0 {
		return host[idx+1:]
	}
	return ""
}

// BackendFromHost extracts the host@backend component, dropping any pool
// suffix.
func BackendFromHost(host string) string {
	if idx := strings.Index(host, "#"); idx >= 0 {
		return host[:idx]
	}
	return host
}
