/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package app drives a Presenter from adapter selection and lease renewal.
package app

import (
	"context"
	"sync"

	"github.com/device-management-toolkit/netinfo/internal/adapter"
	log "github.com/sirupsen/logrus"
)

// Selector returns the primary adapter, if any.
type Selector interface {
	SelectPrimaryAdapter(ctx context.Context) (adapter.Info, bool, error)
}

// Renewer performs a release/renew cycle.
type Renewer interface {
	RenewLease(ctx context.Context) error
}

// Service pushes refresh and renewal results into a Presenter.
type Service struct {
	selector  Selector
	renewer   Renewer
	presenter Presenter
	messages  Messages

	// serializes presenter calls; the deferred refresh arrives on a timer goroutine
	mu sync.Mutex
}

func NewService(selector Selector, renewer Renewer, presenter Presenter, messages Messages) *Service {
	return &Service{
		selector:  selector,
		renewer:   renewer,
		presenter: presenter,
		messages:  messages,
	}
}

// Flush runs flush while no refresh can update the presenter.
func (s *Service) Flush(flush func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return flush()
}

// Refresh selects the primary adapter and presents it. Renewal is offered
// only for a DHCP-managed adapter. A lookup failure is presented like
// "no adapter" and also returned.
func (s *Service) Refresh(ctx context.Context) (*adapter.Info, error) {
	info, ok, err := s.selector.SelectPrimaryAdapter(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || !ok {
		s.presenter.DisplayAdapter(nil)
		s.presenter.SetRenewalAvailable(false)
		s.presenter.DisplayStatus(s.messages.NoAdapter)

		return nil, err
	}

	s.presenter.DisplayAdapter(&info)

	if info.DHCPEnabled {
		s.presenter.SetRenewalAvailable(true)
		s.presenter.DisplayStatus(s.messages.Refreshed)
	} else {
		s.presenter.SetRenewalAvailable(false)
		s.presenter.DisplayStatus(s.messages.StaticAddress)
	}

	return &info, nil
}

// Renew runs the release/renew cycle. Renewal stays unavailable until the
// following refresh decides again.
func (s *Service) Renew(ctx context.Context) error {
	s.mu.Lock()
	s.presenter.SetRenewalAvailable(false)
	s.presenter.DisplayStatus(s.messages.Renewing)
	s.mu.Unlock()

	err := s.renewer.RenewLease(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	message := s.messages.RenewComplete
	if err != nil {
		message = s.messages.ForError(err)
	}

	s.presenter.DisplayStatus(message)

	if reporter, ok := s.presenter.(RenewalReporter); ok {
		reporter.DisplayRenewal(err == nil, message)
	}

	return err
}

// DeferredRefresh adapts Refresh to the lease controller's callback.
func (s *Service) DeferredRefresh(ctx context.Context) func() {
	return func() {
		if _, err := s.Refresh(ctx); err != nil {
			log.Warn("refresh after renewal failed: ", err)
		}
	}
}
