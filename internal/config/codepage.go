/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

var systemEncoding = platformEncoding

var codePages = map[uint32]string{
	437:   "cp437",
	850:   "cp850",
	866:   "ibm866",
	932:   "shift_jis",
	936:   "gbk",
	949:   "cp949",
	950:   "big5",
	1250:  "windows-1250",
	1251:  "windows-1251",
	1252:  "windows-1252",
	1253:  "windows-1253",
	1254:  "windows-1254",
	1255:  "windows-1255",
	1256:  "windows-1256",
	1257:  "windows-1257",
	1258:  "windows-1258",
	65001: "utf-8",
}

// codePageEncoding names the charset of a Windows code page; unknown pages
// read as UTF-8.
func codePageEncoding(cp uint32) string {
	return codePages[cp]
}

// languageEncoding guesses the legacy code page from the message language
// when the host does not report one.
func languageEncoding(lang string) string {
	if lang == "ko" {
		return "cp949"
	}

	return ""
}
