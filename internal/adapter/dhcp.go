/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/device-management-toolkit/netinfo/pkg/network"
	"github.com/device-management-toolkit/netinfo/pkg/utils"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var errInvalidReport = errors.New("configuration report is not valid in the configured encoding")

// Classifier reads the OS configuration report to decide DHCP use.
type Classifier struct {
	networker network.OSNetworker
	tokens    TokenTable
	enc       encoding.Encoding
}

// NewClassifier returns a Classifier decoding the report with enc (UTF-8 when nil).
func NewClassifier(networker network.OSNetworker, tokens TokenTable, enc encoding.Encoding) *Classifier {
	if enc == nil {
		enc = unicode.UTF8
	}

	return &Classifier{
		networker: networker,
		tokens:    tokens.WithDefaults(),
		enc:       enc,
	}
}

// IsDHCPEnabled reports whether the report block carrying mac affirms DHCP.
// Every failure degrades to false; renewal is only offered on positive confirmation.
func (c *Classifier) IsDHCPEnabled(ctx context.Context, mac string) bool {
	forms := utils.MACForms(mac)
	if len(forms) == 0 {
		return false
	}

	raw, err := c.networker.ConfigurationDump(ctx)
	if err != nil {
		log.Debug(fmt.Errorf("%w, treating adapter as static: %w", utils.OSNetworkConfigurationQueryFailed, err))

		return false
	}

	text, err := decodeStrict(c.enc, raw)
	if err != nil {
		log.Debug("configuration report could not be decoded: ", err)

		return false
	}

	return dhcpAffirmed(text, forms, c.tokens)
}

// decodeStrict fails where the decoder would substitute U+FFFD for bytes
// that are invalid in enc.
func decodeStrict(enc encoding.Encoding, raw []byte) (string, error) {
	text, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(text) || bytes.ContainsRune(text, utf8.RuneError) {
		return "", errInvalidReport
	}

	return string(text), nil
}

func dhcpAffirmed(report string, macForms []string, tokens TokenTable) bool {
	for _, block := range splitBlocks(report) {
		if !ownsAddress(block, macForms, tokens) {
			continue
		}

		for _, line := range strings.Split(block, "\n") {
			if lineAffirmsDHCP(line, tokens) {
				return true
			}
		}
	}

	return false
}

// ownsAddress reports whether the block's hardware address line carries one
// of macForms. Other lines, such as a DHCPv6 DUID, may embed foreign MACs.
func ownsAddress(block string, macForms []string, tokens TokenTable) bool {
	for _, line := range strings.Split(block, "\n") {
		if containsAnyFold(line, tokens.AddressLabels) && containsAnyFold(line, macForms) {
			return true
		}
	}

	return false
}

// lineAffirmsDHCP matches "<label> ... : <affirmative>".
func lineAffirmsDHCP(line string, tokens TokenTable) bool {
	lower := strings.ToLower(line)

	for _, label := range tokens.DHCPLabels {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}

		idx := strings.Index(lower, label)
		if idx < 0 {
			continue
		}

		rest := lower[idx+len(label):]

		colon := strings.Index(rest, ":")
		if colon < 0 {
			continue
		}

		value := strings.TrimSpace(rest[colon+1:])

		for _, affirmative := range tokens.Affirmatives {
			affirmative = strings.ToLower(strings.TrimSpace(affirmative))
			if affirmative != "" && strings.HasPrefix(value, affirmative) {
				return true
			}
		}
	}

	return false
}

// splitBlocks cuts a report into runs of non-blank lines.
func splitBlocks(report string) []string {
	report = strings.ReplaceAll(report, "\r\n", "\n")

	var (
		blocks  []string
		current []string
	)

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(report, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()

			continue
		}

		current = append(current, line)
	}

	flush()

	return blocks
}

var encodingAliases = map[string]string{
	"cp949": "windows-949",
	"uhc":   "windows-949",
	"cp437": "IBM437",
	"cp850": "IBM850",
}

// ResolveEncoding maps a charset name to a decoder for the configuration report.
// An empty name selects UTF-8.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}

	if alias, ok := encodingAliases[strings.ToLower(name)]; ok {
		name = alias
	}

	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported output encoding %q: %w", name, err)
	}

	if enc == nil {
		return nil, fmt.Errorf("unsupported output encoding %q", name)
	}

	return enc, nil
}
