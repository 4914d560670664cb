/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package presenter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/device-management-toolkit/netinfo/internal/adapter"
)

type document struct {
	Adapter          *adapter.Info `json:"adapter"`
	Gateway          string        `json:"gateway,omitempty"`
	Status           string        `json:"status"`
	RenewalAvailable bool          `json:"renewalAvailable"`
	Renewal          *renewal      `json:"renewal,omitempty"`
}

type renewal struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// JSON collects the latest state and writes it as one document per Flush.
type JSON struct {
	out     io.Writer
	gateway func() string
	doc     document
}

func NewJSON(out io.Writer, gateway func() string) *JSON {
	return &JSON{out: out, gateway: gateway}
}

func (j *JSON) DisplayAdapter(info *adapter.Info) {
	if info == nil {
		j.doc.Adapter = nil

		return
	}

	copied := *info
	j.doc.Adapter = &copied
}

func (j *JSON) DisplayStatus(message string) {
	j.doc.Status = message
}

func (j *JSON) SetRenewalAvailable(available bool) {
	j.doc.RenewalAvailable = available
}

// DisplayRenewal keeps the renewal outcome; refreshes leave it in place.
func (j *JSON) DisplayRenewal(ok bool, message string) {
	j.doc.Renewal = &renewal{OK: ok, Message: message}
}

func (j *JSON) Flush() error {
	doc := j.doc
	if doc.Adapter != nil && j.gateway != nil {
		doc.Gateway = j.gateway()
	}

	outBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(j.out, string(outBytes))

	return err
}
