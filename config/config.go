// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package config

import (
	"fmt"
)

type Protocol string
type DriverContext string

type Telemetry struct {
	DriverVersion   string `json:"version"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
}

const (
	/* Misc. driver constants */
	ProjectName      = "oceanstor-driver"
	driverVersion    = "2.5.0"
	DefaultLogFormat = "text"
	DefaultLogLevel  = "info"

	/* Protocol constants */
	File        Protocol = "file"
	Block       Protocol = "block"
	ProtocolAny Protocol = ""

	/* REST client constants. The array closes idle sessions aggressively,
	   so the request timeout stays under the array-side limit. */
	StorageAPITimeoutSeconds = 52
	LoginAPITimeoutSeconds   = 32

	/* Driver context constants */
	ContextCinder DriverContext = "cinder"
	ContextCLI    DriverContext = "cli"
)

var (
	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	DriverVersion = version()

	OrchestratorTelemetry = Telemetry{DriverVersion: DriverVersion}
)

func version() string {

	var version string

	if BuildType != "stable" {
		if BuildType == "custom" {
			version = fmt.Sprintf("%v-%v+%v", driverVersion, BuildType, BuildHash)
		} else {
			version = fmt.Sprintf("%v-%v.%v+%v", driverVersion, BuildType, BuildTypeRev, BuildHash)
		}
	} else {
		version = driverVersion
	}

	return version
}
