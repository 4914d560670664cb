/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"context"

	"github.com/device-management-toolkit/netinfo/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// ShowCmd displays the primary adapter once
type ShowCmd struct {
	Require bool `help:"Exit with an error code when no active adapter is found" short:"r"`
}

// Run executes the show command
func (cmd *ShowCmd) Run(ctx *Context) error {
	info, err := ctx.Service.Refresh(context.Background())
	if err != nil {
		log.Warn(err)
	}

	if err := ctx.Service.Flush(ctx.Output.Flush); err != nil {
		return err
	}

	if info == nil && cmd.Require {
		return utils.NoActiveAdapter
	}

	return nil
}
