/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package main

import (
	"errors"
	"os"

	"github.com/device-management-toolkit/netinfo/internal/cli"
	"github.com/device-management-toolkit/netinfo/pkg/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	err := cli.Execute(os.Args)
	if err != nil {
		handleErrorAndExit(err)
	}
}

func handleErrorAndExit(err error) {
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	var customErr utils.CustomError
	if errors.As(err, &customErr) {
		log.Error(err.Error())

		return customErr.Code
	}

	log.Error(err.Error())

	return utils.GenericFailure.Code
}
