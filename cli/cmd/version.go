// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package cmd

import (
	"os"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	driverconfig "github.com/doubletao318/OpenStack-Driver/config"
)

var clientOnly bool

func init() {
	RootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&clientOnly, "client", false, "Client version only (no array required).")
}

type clientVersion struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
}

type arrayVersion struct {
	ProductVersion string `json:"productVersion"`
	ProductMode    string `json:"productMode"`
}

type versionResponse struct {
	Client clientVersion `json:"client"`
	Array  *arrayVersion `json:"array,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of oceanctl and the storage array",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initCmdLogging()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		versions := &versionResponse{
			Client: clientVersion{
				Version:   driverconfig.DriverVersion,
				GoVersion: runtime.Version(),
			},
		}

		if !clientOnly {
			client, err := newOceanClient(ctx)
			if err != nil {
				return err
			}
			defer client.Logout(ctx)

			info, err := client.GetArrayInfo(ctx)
			if err != nil {
				return err
			}
			versions.Array = &arrayVersion{
				ProductVersion: info.ProductVersion,
				ProductMode:    info.ProductMode,
			}
		}

		writeVersions(versions)
		return nil
	},
}

func writeVersions(versions *versionResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(versions)
	case FormatYAML:
		WriteYAML(versions)
	case FormatWide:
		writeWideVersionTable(versions)
	default:
		writeVersionTable(versions)
	}
}

func writeVersionTable(versions *versionResponse) {
	table := tablewriter.NewWriter(os.Stdout)

	if versions.Array == nil {
		table.SetHeader([]string{"Client Version"})
		table.Append([]string{versions.Client.Version})
	} else {
		table.SetHeader([]string{"Client Version", "Array Version"})
		table.Append([]string{versions.Client.Version, versions.Array.ProductVersion})
	}

	table.Render()
}

func writeWideVersionTable(versions *versionResponse) {
	table := tablewriter.NewWriter(os.Stdout)

	if versions.Array == nil {
		table.SetHeader([]string{"Client Version", "Client Go Version"})
		table.Append([]string{versions.Client.Version, versions.Client.GoVersion})
	} else {
		table.SetHeader([]string{"Client Version", "Client Go Version", "Array Version", "Array Product Mode"})
		table.Append([]string{
			versions.Client.Version,
			versions.Client.GoVersion,
			versions.Array.ProductVersion,
			versions.Array.ProductMode,
		})
	}

	table.Render()
}
