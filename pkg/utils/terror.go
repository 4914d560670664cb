/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

// CustomError carries a process exit code alongside the error text.
type CustomError struct {
	Code    int
	Message string
	Details string
}

func (e CustomError) Error() string {
	if e.Details == "" {
		return e.Message
	}

	return e.Message + ": " + e.Details
}
