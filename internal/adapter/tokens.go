/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package adapter

import "strings"

// TokenTable holds the locale-dependent words used to classify adapter
// names and to read the OS configuration report. Matching is case-insensitive.
type TokenTable struct {
	// Wired and Wireless are substrings of adapter names.
	Wired    []string `yaml:"wired" json:"wired"`
	Wireless []string `yaml:"wireless" json:"wireless"`
	// Loopback lists full adapter names that are never selected.
	Loopback []string `yaml:"loopback" json:"loopback"`
	// AddressLabels mark the configuration line carrying an adapter's own
	// hardware address.
	AddressLabels []string `yaml:"addressLabels" json:"addressLabels"`
	// DHCPLabels mark the configuration line that states DHCP use.
	DHCPLabels []string `yaml:"dhcpLabels" json:"dhcpLabels"`
	// Affirmatives are the values of that line meaning "DHCP is on".
	Affirmatives []string `yaml:"affirmatives" json:"affirmatives"`
}

// DefaultTokenTable covers English and Korean Windows plus NetworkManager output.
func DefaultTokenTable() TokenTable {
	return TokenTable{
		Wired:         []string{"ethernet", "이더넷"},
		Wireless:      []string{"wi-fi", "무선"},
		Loopback:      []string{"Loopback Pseudo-Interface 1", "lo", "lo0"},
		AddressLabels: []string{"Physical Address", "물리적 주소", "GENERAL.HWADDR"},
		DHCPLabels:    []string{"DHCP 사용", "DHCP Enabled", "DHCP4.OPTION"},
		Affirmatives:  []string{"네", "예", "Yes", "dhcp_server_identifier"},
	}
}

// WithDefaults fills every empty list from DefaultTokenTable.
func (t TokenTable) WithDefaults() TokenTable {
	d := DefaultTokenTable()

	if len(t.Wired) == 0 {
		t.Wired = d.Wired
	}

	if len(t.Wireless) == 0 {
		t.Wireless = d.Wireless
	}

	if len(t.Loopback) == 0 {
		t.Loopback = d.Loopback
	}

	if len(t.AddressLabels) == 0 {
		t.AddressLabels = d.AddressLabels
	}

	if len(t.DHCPLabels) == 0 {
		t.DHCPLabels = d.DHCPLabels
	}

	if len(t.Affirmatives) == 0 {
		t.Affirmatives = d.Affirmatives
	}

	return t
}

// containsAnyFold reports whether s contains any non-empty token, ignoring case.
func containsAnyFold(s string, tokens []string) bool {
	lower := strings.ToLower(s)

	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" && strings.Contains(lower, token) {
			return true
		}
	}

	return false
}

func equalsAnyFold(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(token)) {
			return true
		}
	}

	return false
}
