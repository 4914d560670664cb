/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import (
	"net"
	"strings"
)

// NormalizeMAC returns the lowercase colon form of a hardware address.
// Input that does not parse is returned unchanged.
func NormalizeMAC(mac string) string {
	if hw, err := net.ParseMAC(strings.TrimSpace(mac)); err == nil {
		return hw.String()
	}

	return mac
}

// MACForms lists the textual spellings an OS tool may use for mac,
// lowercased: colon separated and hyphen separated.
func MACForms(mac string) []string {
	mac = strings.TrimSpace(mac)
	if mac == "" {
		return nil
	}

	colon := strings.ToLower(NormalizeMAC(mac))
	hyphen := strings.ReplaceAll(colon, ":", "-")

	if colon == hyphen {
		return []string{colon}
	}

	return []string{colon, hyphen}
}
