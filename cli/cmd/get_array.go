// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package cmd

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api"
)

func init() {
	getCmd.AddCommand(getArrayCmd)
}

var getArrayCmd = &cobra.Command{
	Use:     "array",
	Short:   "Get identity and version information for the storage array",
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newOceanClient(ctx)
		if err != nil {
			return err
		}
		defer client.Logout(ctx)

		return arrayShow(ctx, client)
	},
}

func arrayShow(ctx context.Context, client api.OceanStorAPI) error {
	info, err := client.GetArrayInfo(ctx)
	if err != nil {
		return err
	}

	WriteArrayInfo(info)
	return nil
}

func WriteArrayInfo(info *api.ArrayInfo) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(info)
	case FormatYAML:
		WriteYAML(info)
	default:
		writeArrayInfoTable(info)
	}
}

func writeArrayInfoTable(info *api.ArrayInfo) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Serial Number", "Product Mode", "Product Version", "WWN"})

	table.Append([]string{
		info.Name,
		info.ID,
		info.ProductMode,
		info.ProductVersion,
		info.WWN,
	})

	table.Render()
}
