/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package lease

import (
	"errors"

	"github.com/device-management-toolkit/netinfo/pkg/network"
	"github.com/device-management-toolkit/netinfo/pkg/utils"
)

// Kind is the user-facing category of a failed release/renew.
type Kind int

const (
	KindUnknown Kind = iota
	KindCommandNotFound
	KindPermissionDenied
)

func (k Kind) String() string {
	switch k {
	case KindCommandNotFound:
		return "command not found"
	case KindPermissionDenied:
		return "permission denied"
	default:
		return "unknown"
	}
}

// Error is returned by Controller.RenewLease.
type Error struct {
	Kind Kind
	// Step is "release" or "renew".
	Step string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Step + ": " + e.Kind.String()
	}

	return e.Step + ": " + e.Err.Error()
}

// Unwrap exposes both the matching utils sentinel and the underlying cause,
// so errors.Is works against utils.LeaseCommand* values.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}

	return []error{e.sentinel(), e.Err}
}

func (e *Error) sentinel() utils.CustomError {
	switch e.Kind {
	case KindCommandNotFound:
		return utils.LeaseCommandNotFound
	case KindPermissionDenied:
		return utils.LeaseCommandPermissionDenied
	default:
		return utils.LeaseCommandUnknownFailure
	}
}

// Code is the process exit code for this failure.
func (e *Error) Code() int {
	return e.sentinel().Code
}

func classify(step string, err error) *Error {
	kind := KindUnknown

	var cmdErr *network.CommandError
	if errors.As(err, &cmdErr) {
		switch cmdErr.Kind {
		case network.KindNotFound:
			kind = KindCommandNotFound
		case network.KindExitStatus:
			// the OS tool signals missing privilege only through its exit status
			kind = KindPermissionDenied
		}
	}

	return &Error{Kind: kind, Step: step, Err: err}
}
