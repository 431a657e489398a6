// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	driverconfig "github.com/doubletao318/OpenStack-Driver/config"
	"github.com/doubletao318/OpenStack-Driver/logging"
	drivers "github.com/doubletao318/OpenStack-Driver/storage_drivers"
	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatWide = "wide"

	ExitCodeSuccess = 0
	ExitCodeFailure = 1

	// Environment variables prefixed HW_ override file settings, so that
	// credentials can stay out of the configuration file.
	envPrefix = "HW"

	defaultConfigFile = "/etc/oceanctl/backend.json"
)

var (
	Debug        bool
	ConfigFile   string
	OutputFormat string
	ExitCode     int

	// One request context per invocation, so all log lines of a command run
	// share a request ID.
	ctx = logging.GenerateRequestContext(context.Background(), "", logging.ContextSourceCLI)
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          "oceanctl",
	Short:        "A CLI tool for Huawei OceanStor backends",
	Long:         `A CLI tool for inspecting the Huawei OceanStor arrays behind the OpenStack block storage driver`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", defaultConfigFile,
		"Path of the backend configuration file")
	RootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", "",
		"Output format. One of json|yaml|wide (default is a table)")
}

func initCmdLogging() {
	logging.InitLogOutput(os.Stderr)
	if err := logging.InitLogLevel(Debug, driverconfig.DefaultLogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// loadBackendConfig reads the backend configuration file the driver itself
// uses and applies any HW_* environment overrides, e.g. HW_PASSWORD.
func loadBackendConfig() (*drivers.HuaweiStorageDriverConfig, error) {
	v := viper.New()
	v.SetConfigFile(ConfigFile)
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read backend configuration %s: %v", ConfigFile, err)
	}

	config := &drivers.HuaweiStorageDriverConfig{
		CommonStorageDriverConfig: &drivers.CommonStorageDriverConfig{},
	}
	config.ManagementURLs = v.GetStringSlice("managementURLs")
	config.Username = v.GetString("username")
	config.Password = v.GetString("password")
	config.VStoreName = v.GetString("vstoreName")
	config.InsecureSkipVerify = v.GetBool("insecureSkipVerify")
	config.StoragePools = v.GetStringSlice("storagePools")

	return config, nil
}

// newOceanClient builds a logged-in API client from the backend configuration.
// The caller owns the session and must call Logout.
func newOceanClient(ctx context.Context) (api.OceanStorAPI, error) {
	config, err := loadBackendConfig()
	if err != nil {
		return nil, err
	}

	client, err := api.NewAPIClient(ctx, api.ClientConfig{
		ManagementURLs:     config.ManagementURLs,
		Username:           config.Username,
		Password:           config.Password,
		VStoreName:         config.VStoreName,
		InsecureSkipVerify: config.InsecureSkipVerify,
		DebugTraceFlags:    map[string]bool{"method": Debug, "api": Debug},
	})
	if err != nil {
		return nil, err
	}

	if err = client.Login(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func SetExitCodeFromError(err error) {
	ExitCode = GetExitCodeFromError(err)
}

func GetExitCodeFromError(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeFailure
}
