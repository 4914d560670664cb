/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import (
	"context"
	"time"
)

// DefaultCommandTimeout bounds every spawned OS network command.
const DefaultCommandTimeout = 30 * time.Second

// Interface is one row of the OS interface table.
type Interface struct {
	Name         string
	HardwareAddr string
	Up           bool
	Loopback     bool
	// Addrs holds assigned addresses in the order the OS reported them,
	// either in CIDR notation or as a bare IP.
	Addrs []string
}

// OSNetworker provides platform-specific network operations
type OSNetworker interface {
	// Interfaces reads the live interface table.
	Interfaces(ctx context.Context) ([]Interface, error)
	// ConfigurationDump returns the raw bulk configuration report for all adapters.
	ConfigurationDump(ctx context.Context) ([]byte, error)
	// ReleaseLeases releases every DHCP lease on the host.
	ReleaseLeases(ctx context.Context) error
	// RenewLeases renews every DHCP lease on the host.
	RenewLeases(ctx context.Context) error
}

// RealOSNetworker is the concrete implementation of OSNetworker
type RealOSNetworker struct {
	Timeout time.Duration
}

func (n *RealOSNetworker) timeout() time.Duration {
	if n.Timeout <= 0 {
		return DefaultCommandTimeout
	}

	return n.Timeout
}
