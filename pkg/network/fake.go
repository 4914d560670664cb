/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import (
	"context"
	"sync"
)

// FakeOSNetworker is an in-memory OSNetworker that serves canned answers
// and records which operations were invoked.
type FakeOSNetworker struct {
	Table      []Interface
	TableErr   error
	Dump       []byte
	DumpErr    error
	ReleaseErr error
	RenewErr   error

	mu    sync.Mutex
	calls []string
}

const (
	CallInterfaces        = "interfaces"
	CallConfigurationDump = "configuration-dump"
	CallRelease           = "release"
	CallRenew             = "renew"
)

func (f *FakeOSNetworker) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call)
}

// Calls returns the operations invoked so far, in order.
func (f *FakeOSNetworker) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

// CallCount returns how many times call was invoked.
func (f *FakeOSNetworker) CallCount(call string) int {
	count := 0

	for _, c := range f.Calls() {
		if c == call {
			count++
		}
	}

	return count
}

func (f *FakeOSNetworker) Interfaces(ctx context.Context) ([]Interface, error) {
	f.record(CallInterfaces)

	if f.TableErr != nil {
		return nil, f.TableErr
	}

	return append([]Interface(nil), f.Table...), nil
}

func (f *FakeOSNetworker) ConfigurationDump(ctx context.Context) ([]byte, error) {
	f.record(CallConfigurationDump)

	if f.DumpErr != nil {
		return nil, f.DumpErr
	}

	return f.Dump, nil
}

func (f *FakeOSNetworker) ReleaseLeases(ctx context.Context) error {
	f.record(CallRelease)

	return f.ReleaseErr
}

func (f *FakeOSNetworker) RenewLeases(ctx context.Context) error {
	f.record(CallRenew)

	return f.RenewErr
}
