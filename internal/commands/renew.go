/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"context"

	"github.com/device-management-toolkit/netinfo/internal/lease"
	"github.com/device-management-toolkit/netinfo/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// RenewCmd releases and renews the host's DHCP leases, then shows the refreshed adapter
type RenewCmd struct {
	Force bool `help:"Renew even when the adapter is not confirmed to be DHCP-managed" short:"f"`
}

// Run executes the renew command
func (cmd *RenewCmd) Run(ctx *Context) error {
	background := context.Background()

	info, err := ctx.Service.Refresh(background)
	if err != nil {
		log.Warn(err)
	}

	if !cmd.Force && (info == nil || !info.DHCPEnabled) {
		if err := ctx.Service.Flush(ctx.Output.Flush); err != nil {
			return err
		}

		if info == nil {
			return utils.NoActiveAdapter
		}

		return utils.StaticAddress
	}

	if cmd.Force && (info == nil || !info.DHCPEnabled) {
		log.Warn("renewing without DHCP confirmation for the selected adapter")
	}

	renewErr := ctx.Service.Renew(background)

	// the deferred refresh queries the interface table and the configuration report
	waitCtx, cancel := context.WithTimeout(background, lease.RefreshDelay+2*ctx.Config.CommandTimeout)
	defer cancel()

	if err := ctx.Renewal.Wait(waitCtx); err != nil {
		log.Warn("adapter refresh after renewal did not complete: ", err)
	}

	if err := ctx.Service.Flush(ctx.Output.Flush); err != nil {
		return err
	}

	return renewErr
}
