// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package huawei

import "time"

// MaxNameLength is the array-imposed ceiling on object names. Encoded volume,
// snapshot and host names never exceed it.
const MaxNameLength = 31

const (
	// CapacityUnit converts GiB to the 512-byte sectors the array expects.
	CapacityUnit = 1024 * 1024 * 1024 / 512

	DefaultWaitInterval = 5 * time.Second
	DefaultWaitTimeout  = 30 * 24 * time.Hour

	// SupportClonePairVersion is the first firmware release with clone pairs.
	SupportClonePairVersion = "V600R003C00"
)

// Object health and running status values reported by the array.
const (
	StatusHealth       = "1"
	StatusVolumeReady  = "27"
	StatusLunCopyReady = "40"

	SnapshotActivated   = "43"
	SnapshotUnactivated = "45"

	ClonePairHealthy  = "0"
	ClonePairComplete = "2"
)

// AvailableFeatureStatus holds the license states under which a feature is
// usable: 1 means licensed, 2 means licensed in the evaluation period.
var AvailableFeatureStatus = map[int]bool{1: true, 2: true}

// LUN copy speed bounds accepted by the array.
const (
	LunCopySpeedLow     = "1"
	LunCopySpeedMedium  = "2"
	LunCopySpeedHigh    = "3"
	LunCopySpeedHighest = "4"

	DefaultLunCopySpeed = LunCopySpeedMedium
)

// LUN provisioning types accepted in the driver configuration.
const (
	LunTypeThin  = "thin"
	LunTypeThick = "thick"
)

const (
	defaultLunCopyWaitInterval = 3 * time.Second
	defaultLunTimeout          = 6 * time.Hour
)

// Extra-spec keys recognized on volume types.
const (
	specDedup           = "capabilities:dedup"
	specCompression     = "capabilities:compression"
	specHypermetro      = "capabilities:hypermetro"
	specReplication     = "replication_enabled"
	specSmartTierPolicy = "smarttier:policy"
	specApplicationType = "huawei_application_type"
	specApplicationName = "applicationname"
)

// License feature names gated by each option. Some features appear in the
// license catalog under more than one name depending on firmware, so any
// match makes the option usable.
var featurePairs = map[string][]string{
	"qos":         {"SmartQoS"},
	"smarttier":   {"SmartTier"},
	"smartcache":  {"SmartCache"},
	"dedup":       {"SmartDedupe", "SmartDedupe (for LUN)"},
	"compression": {"SmartCompression", "SmartCompression (for LUN)"},
	"hypermetro":  {"HyperMetro"},
	"replication": {"HyperReplication"},
	"luncopy":     {"HyperCopy"},
}
