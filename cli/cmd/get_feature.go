// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package cmd

import (
	"context"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei"
	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api"
)

func init() {
	getCmd.AddCommand(getFeatureCmd)
}

var getFeatureCmd = &cobra.Command{
	Use:     "features",
	Short:   "Get the license feature states of the storage array",
	Aliases: []string{"feature", "f"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newOceanClient(ctx)
		if err != nil {
			return err
		}
		defer client.Logout(ctx)

		return featureList(ctx, client)
	},
}

func featureList(ctx context.Context, client api.OceanStorAPI) error {
	features, err := client.GetLicenseFeatures(ctx)
	if err != nil {
		return err
	}

	WriteFeatures(features)
	return nil
}

func WriteFeatures(features map[string]int) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(features)
	case FormatYAML:
		WriteYAML(features)
	default:
		writeFeatureTable(features)
	}
}

func writeFeatureTable(features map[string]int) {
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Feature", "Status", "Available"})

	for _, name := range names {
		status := features[name]
		table.Append([]string{
			name,
			strconv.Itoa(status),
			strconv.FormatBool(huawei.AvailableFeatureStatus[status]),
		})
	}

	table.Render()
}
