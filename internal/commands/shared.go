/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"context"

	"github.com/device-management-toolkit/netinfo/internal/app"
	"github.com/device-management-toolkit/netinfo/internal/config"
)

// Output is a Presenter that writes its accumulated state on Flush.
type Output interface {
	app.Presenter
	Flush() error
}

// Renewal is the part of the lease controller commands wait on.
type Renewal interface {
	Wait(ctx context.Context) error
}

// Context holds shared dependencies injected into commands
type Context struct {
	Service    *app.Service
	Renewal    Renewal
	Output     Output
	Config     config.Configuration
	LogLevel   string
	JsonOutput bool
	Verbose    bool
}
