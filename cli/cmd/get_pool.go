// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api"
)

func init() {
	getCmd.AddCommand(getPoolCmd)
}

var getPoolCmd = &cobra.Command{
	Use:     "pools",
	Short:   "Get the storage pools of the storage array",
	Aliases: []string{"pool", "p"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newOceanClient(ctx)
		if err != nil {
			return err
		}
		defer client.Logout(ctx)

		return poolList(ctx, client)
	},
}

func poolList(ctx context.Context, client api.OceanStorAPI) error {
	pools, err := client.GetStoragePools(ctx)
	if err != nil {
		return err
	}

	WritePools(pools)
	return nil
}

func WritePools(pools []api.StoragePool) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(pools)
	case FormatYAML:
		WriteYAML(pools)
	case FormatWide:
		writeWidePoolTable(pools)
	default:
		writePoolTable(pools)
	}
}

func writePoolTable(pools []api.StoragePool) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "ID", "Status", "Free", "Total"})

	for _, pool := range pools {
		table.Append([]string{
			pool.Name,
			pool.ID,
			pool.RunningStatus,
			humanizeSectors(pool.UserFreeCapacity),
			humanizeSectors(pool.UserTotalCapacity),
		})
	}

	table.Render()
}

func writeWidePoolTable(pools []api.StoragePool) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "ID", "Parent", "Status", "Usage", "Free", "Total"})

	for _, pool := range pools {
		table.Append([]string{
			pool.Name,
			pool.ID,
			pool.ParentName,
			pool.RunningStatus,
			poolUsage(pool.UsageType),
			humanizeSectors(pool.UserFreeCapacity),
			humanizeSectors(pool.UserTotalCapacity),
		})
	}

	table.Render()
}

// humanizeSectors renders the array's sector-count strings as bytes. A value
// that does not parse is passed through untouched.
func humanizeSectors(sectors string) string {
	count, err := strconv.ParseUint(sectors, 10, 64)
	if err != nil {
		return sectors
	}
	return humanize.IBytes(count * 512)
}

func poolUsage(usageType string) string {
	switch usageType {
	case "1":
		return "block"
	case "2":
		return "file"
	default:
		return usageType
	}
}
