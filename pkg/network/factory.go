/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import "time"

// NewOSNetworker returns a platform-specific implementation of OSNetworker
func NewOSNetworker(timeout time.Duration) OSNetworker {
	return &RealOSNetworker{Timeout: timeout}
}
