/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import (
	"context"
	"strings"

	psnet "github.com/shirou/gopsutil/v3/net"
	log "github.com/sirupsen/logrus"
)

func (n *RealOSNetworker) Interfaces(ctx context.Context) ([]Interface, error) {
	log.Debug("reading OS interface table")

	stats, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		log.Error("Error reading interface table:", err)

		return nil, err
	}

	ifaces := make([]Interface, 0, len(stats))
	for _, stat := range stats {
		ifaces = append(ifaces, fromStat(stat))
	}

	return ifaces, nil
}

func fromStat(stat psnet.InterfaceStat) Interface {
	iface := Interface{
		Name:         stat.Name,
		HardwareAddr: strings.TrimSpace(stat.HardwareAddr),
	}

	for _, flag := range stat.Flags {
		switch strings.ToLower(flag) {
		case "up":
			iface.Up = true
		case "loopback":
			iface.Loopback = true
		}
	}

	for _, addr := range stat.Addrs {
		if addr.Addr != "" {
			iface.Addrs = append(iface.Addrs, addr.Addr)
		}
	}

	return iface
}
