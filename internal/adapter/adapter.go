/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package adapter picks the host's primary network adapter and decides
// whether its address is DHCP-managed.
package adapter

// Status is the semantic state reported for a selected adapter.
type Status string

// StatusActive is the only status a selected adapter can carry; down
// interfaces never reach selection.
const StatusActive Status = "active"

// Info describes the selected adapter for a single refresh cycle.
type Info struct {
	Name        string `json:"name"`
	MAC         string `json:"mac"`
	IP          string `json:"ip"`
	Status      Status `json:"status"`
	DHCPEnabled bool   `json:"dhcpEnabled"`
	Bucket      Bucket `json:"bucket"`
}

// Equal reports whether two Info values describe the same adapter state.
func (i Info) Equal(other Info) bool {
	return i == other
}
