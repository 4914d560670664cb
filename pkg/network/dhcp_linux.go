//go:build !windows
// +build !windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import (
	"context"

	log "github.com/sirupsen/logrus"
)

const (
	dhclient = "dhclient"
	nmcli    = "nmcli"
)

// ConfigurationDump uses NetworkManager's per-device report; its blocks are
// separated by blank lines like ipconfig's.
func (n *RealOSNetworker) ConfigurationDump(ctx context.Context) ([]byte, error) {
	log.Debug("querying adapter configuration")

	return n.run(ctx, nmcli, "device", "show")
}

func (n *RealOSNetworker) ReleaseLeases(ctx context.Context) error {
	log.Debug("releasing DHCP leases")

	if _, err := n.run(ctx, dhclient, "-r"); err != nil {
		log.Error("Error releasing DHCP leases:", err)

		return err
	}

	return nil
}

func (n *RealOSNetworker) RenewLeases(ctx context.Context) error {
	log.Debug("renewing DHCP lease")

	if _, err := n.run(ctx, dhclient); err != nil {
		log.Error("Error renewing DHCP lease:", err)

		return err
	}

	return nil
}
