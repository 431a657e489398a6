// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package main

import (
	"os"

	"github.com/doubletao318/OpenStack-Driver/cli/cmd"
)

func main() {
	cmd.ExitCode = cmd.ExitCodeSuccess

	if err := cmd.RootCmd.Execute(); err != nil {
		cmd.SetExitCodeFromError(err)
	}

	os.Exit(cmd.ExitCode)
}
