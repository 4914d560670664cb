/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

var ProjectVersion string = "Development Build"

const (
	// ProjectName is the name of the executable
	ProjectName = "netinfo"
	// ClientName is the display name of the tool
	ClientName = "Simple Network Info"

	HelpHeader = ClientName + " - shows the primary network adapter and renews its DHCP lease"

	CommandShow    = "show"
	CommandRenew   = "renew"
	CommandVersion = "version"

	// ConfigFile is read from the working directory when --config is not given
	ConfigFile = "netinfo.yaml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "NETINFO"
)

// (1-19) Basic errors
var (
	GenericFailure = CustomError{Code: 10, Message: "GenericFailure"}
)

// (20-69) Input errors
var (
	IncorrectCommandLineParameters = CustomError{Code: 28, Message: "IncorrectCommandLineParameters"}
	FailedReadingConfiguration     = CustomError{Code: 34, Message: "FailedReadingConfiguration"}
	MissingOrInvalidConfiguration  = CustomError{Code: 35, Message: "MissingOrInvalidConfiguration"}
)

// (70-99) OS query errors
var (
	OSNetworkInterfacesLookupFailed   = CustomError{Code: 72, Message: "OSNetworkInterfacesLookupFailed"}
	OSNetworkConfigurationQueryFailed = CustomError{Code: 73, Message: "OSNetworkConfigurationQueryFailed"}
)

// (160-199) Lease errors
var (
	LeaseCommandNotFound         = CustomError{Code: 160, Message: "LeaseCommandNotFound", Details: "network command-line tool is not available"}
	LeaseCommandPermissionDenied = CustomError{Code: 161, Message: "LeaseCommandPermissionDenied", Details: "insufficient privilege"}
	LeaseCommandUnknownFailure   = CustomError{Code: 162, Message: "LeaseCommandUnknownFailure"}
	NoActiveAdapter              = CustomError{Code: 163, Message: "NoActiveAdapter"}
	StaticAddress                = CustomError{Code: 164, Message: "StaticAddress", Details: "adapter is not DHCP-managed"}
)
