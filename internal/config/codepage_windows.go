//go:build windows
// +build windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import "golang.org/x/sys/windows"

// platformEncoding reads the console output code page, which ipconfig writes
// in, then the ANSI code page when no console is attached.
func platformEncoding(lang string) string {
	if cp, err := windows.GetConsoleOutputCP(); err == nil && cp != 0 {
		return codePageEncoding(cp)
	}

	if acp := windows.GetACP(); acp != 0 {
		return codePageEncoding(acp)
	}

	return languageEncoding(lang)
}
