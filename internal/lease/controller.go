/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package lease runs the host-wide DHCP release/renew cycle.
package lease

import (
	"context"
	"sync"
	"time"

	"github.com/device-management-toolkit/netinfo/pkg/network"
	log "github.com/sirupsen/logrus"
)

// RefreshDelay lets the OS settle the new lease before the adapter is queried again.
const RefreshDelay = 2 * time.Second

// Controller releases and renews every lease on the host. It does not check
// that the selected adapter is DHCP-managed; callers gate that.
type Controller struct {
	networker network.OSNetworker
	scheduler Scheduler
	refresh   func()

	mu      sync.Mutex
	pending bool
	done    chan struct{}
}

// NewController returns a Controller that calls refresh RefreshDelay after
// every renewal attempt.
func NewController(networker network.OSNetworker, scheduler Scheduler, refresh func()) *Controller {
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}

	return &Controller{
		networker: networker,
		scheduler: scheduler,
		refresh:   refresh,
	}
}

// SetRefresh replaces the deferred refresh callback.
func (c *Controller) SetRefresh(refresh func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.refresh = refresh
}

// RenewLease releases then renews all leases. Renew is skipped when release
// fails. A deferred refresh is scheduled whatever the outcome.
func (c *Controller) RenewLease(ctx context.Context) error {
	defer c.scheduleRefresh()

	log.Info("releasing DHCP leases")

	if err := c.networker.ReleaseLeases(ctx); err != nil {
		leaseErr := classify("release", err)
		log.Errorf("lease release failed (%s): %v", leaseErr.Kind, err)

		return leaseErr
	}

	log.Info("renewing DHCP leases")

	if err := c.networker.RenewLeases(ctx); err != nil {
		leaseErr := classify("renew", err)
		log.Errorf("lease renew failed (%s): %v", leaseErr.Kind, err)

		return leaseErr
	}

	log.Info("DHCP leases renewed")

	return nil
}

// scheduleRefresh arms the deferred refresh unless one is already pending.
func (c *Controller) scheduleRefresh() bool {
	c.mu.Lock()

	if c.pending {
		c.mu.Unlock()
		log.Debug("refresh already pending, not scheduling another")

		return false
	}

	c.pending = true
	done := make(chan struct{})
	c.done = done
	refresh := c.refresh
	c.mu.Unlock()

	c.scheduler.AfterFunc(RefreshDelay, func() {
		defer func() {
			c.mu.Lock()
			c.pending = false
			c.mu.Unlock()
			close(done)
		}()

		if refresh != nil {
			refresh()
		}
	})

	return true
}

// Pending reports whether a deferred refresh has not run yet.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending
}

// Wait blocks until the pending refresh, if any, has run.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	pending, done := c.pending, c.done
	c.mu.Unlock()

	if !pending {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
