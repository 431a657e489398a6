// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei"
	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api"
)

// Naming scheme labels reported with a resolved LUN.
const (
	schemeCurrent = "current"
	schemeLegacy  = "legacy"
)

func init() {
	getCmd.AddCommand(getLunCmd)
}

var getLunCmd = &cobra.Command{
	Use:     "lun <volume-id>",
	Short:   "Get the LUN backing a block storage volume",
	Aliases: []string{"l"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newOceanClient(ctx)
		if err != nil {
			return err
		}
		defer client.Logout(ctx)

		return lunShow(ctx, client, args[0])
	},
}

type lunResponse struct {
	Scheme string   `json:"scheme"`
	Lun    *api.Lun `json:"lun"`
}

func lunShow(ctx context.Context, client api.OceanStorAPI, volumeID string) error {
	lun, scheme, err := resolveLun(ctx, client, volumeID)
	if err != nil {
		return err
	}

	WriteLun(lun, scheme)
	return nil
}

// resolveLun finds the LUN named after the volume ID, trying the current
// encoding first and the legacy encoding second, in the same order the driver
// resolves volumes. The returned scheme names the encoding that matched.
func resolveLun(ctx context.Context, client api.OceanStorAPI, volumeID string) (*api.Lun, string, error) {
	scheme := schemeCurrent
	lunID, err := client.GetLunIDByName(ctx, huawei.EncodeName(volumeID))
	if err != nil {
		return nil, "", err
	}

	if lunID == "" {
		scheme = schemeLegacy
		lunID, err = client.GetLunIDByName(ctx, huawei.OldEncodeName(volumeID))
		if err != nil {
			return nil, "", err
		}
	}
	if lunID == "" {
		return nil, "", fmt.Errorf("no LUN found for volume %s under either naming scheme", volumeID)
	}

	lun, err := client.GetLunInfoByID(ctx, lunID)
	if err != nil {
		return nil, "", err
	}
	return lun, scheme, nil
}

func WriteLun(lun *api.Lun, scheme string) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(lunResponse{Scheme: scheme, Lun: lun})
	case FormatYAML:
		WriteYAML(lunResponse{Scheme: scheme, Lun: lun})
	case FormatWide:
		writeWideLunTable(lun, scheme)
	default:
		writeLunTable(lun, scheme)
	}
}

func writeLunTable(lun *api.Lun, scheme string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Health", "Running", "Capacity", "Scheme"})

	table.Append([]string{
		lun.ID,
		lun.Name,
		lun.HealthStatus,
		lun.RunningStatus,
		humanizeSectors(lun.Capacity),
		scheme,
	})

	table.Render()
}

func writeWideLunTable(lun *api.Lun, scheme string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Pool ID", "Health", "Running", "Capacity", "WWN", "Scheme"})

	table.Append([]string{
		lun.ID,
		lun.Name,
		lun.ParentID,
		lun.HealthStatus,
		lun.RunningStatus,
		humanizeSectors(lun.Capacity),
		lun.WWN,
		scheme,
	})

	table.Render()
}
