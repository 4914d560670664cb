//go:build !windows
// +build !windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

// NetworkManager writes UTF-8 regardless of locale.
func platformEncoding(lang string) string {
	return ""
}
