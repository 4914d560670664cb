/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import (
	"github.com/jackpal/gateway"
	log "github.com/sirupsen/logrus"
)

// gatewayDiscoverer is swapped out in tests.
var gatewayDiscoverer = gateway.DiscoverGateway

// DefaultGateway returns the host's default IPv4 gateway, or "" when none is routable.
func DefaultGateway() string {
	ip, err := gatewayDiscoverer()
	if err != nil || ip == nil {
		log.Debugf("default gateway not detected: %v", err)

		return ""
	}

	return ip.String()
}
