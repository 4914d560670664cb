/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package app

import "github.com/device-management-toolkit/netinfo/internal/adapter"

// Presenter owns all display state. The core only pushes values into it.
type Presenter interface {
	// DisplayAdapter shows the selected adapter, or clears the view when info is nil.
	DisplayAdapter(info *adapter.Info)
	DisplayStatus(message string)
	SetRenewalAvailable(available bool)
}

// RenewalReporter is implemented by presenters that keep the outcome of the
// last renewal apart from the status line, which a later refresh overwrites.
type RenewalReporter interface {
	DisplayRenewal(ok bool, message string)
}
