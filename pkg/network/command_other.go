//go:build !windows
// +build !windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
