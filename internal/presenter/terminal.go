/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package presenter renders adapter state for the command line.
package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/device-management-toolkit/netinfo/internal/adapter"
	"github.com/device-management-toolkit/netinfo/internal/app"
	"golang.org/x/term"
)

var (
	labelColor  = lipgloss.Color("#FFFFFF")
	valueColor  = lipgloss.Color("#39ff14")
	statusColor = lipgloss.Color("#888888")
)

const labelWidth = 14

// Terminal prints status lines as they arrive and the adapter table on Flush.
type Terminal struct {
	out      io.Writer
	messages app.Messages
	gateway  func() string

	label  lipgloss.Style
	value  lipgloss.Style
	status lipgloss.Style

	info    *adapter.Info
	renewal bool
}

// NewTerminal styles output only when out is a terminal. gateway may be nil.
func NewTerminal(out io.Writer, messages app.Messages, gateway func() string) *Terminal {
	t := &Terminal{
		out:      out,
		messages: messages,
		gateway:  gateway,
		label:    lipgloss.NewStyle().Width(labelWidth),
		value:    lipgloss.NewStyle(),
		status:   lipgloss.NewStyle(),
	}

	if isTerminal(out) {
		renderer := lipgloss.NewRenderer(out)
		t.label = renderer.NewStyle().Width(labelWidth).Bold(true).Foreground(labelColor)
		t.value = renderer.NewStyle().Foreground(valueColor)
		t.status = renderer.NewStyle().Italic(true).Foreground(statusColor)
	}

	return t
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *Terminal) DisplayAdapter(info *adapter.Info) {
	if info == nil {
		t.info = nil

		return
	}

	copied := *info
	t.info = &copied
}

func (t *Terminal) DisplayStatus(message string) {
	fmt.Fprintln(t.out, t.status.Render(message))
}

func (t *Terminal) SetRenewalAvailable(available bool) {
	t.renewal = available
}

// Flush writes the adapter table.
func (t *Terminal) Flush() error {
	na := t.messages.NotAvailable
	name, mac, ip, gw := na, na, na, na

	if t.info != nil {
		name = fmt.Sprintf("%s (%s)", t.info.Name, t.messages.Active)
		mac = orDefault(t.info.MAC, na)
		ip = orDefault(t.info.IP, na)

		if t.gateway != nil {
			gw = orDefault(t.gateway(), na)
		}
	}

	rows := []string{
		t.row(t.messages.AdapterLabel, name),
		t.row(t.messages.MACLabel, mac),
		t.row(t.messages.IPLabel, ip),
		t.row(t.messages.GatewayLabel, gw),
	}

	if t.renewal {
		rows = append(rows, t.status.Render(t.messages.RenewHint))
	}

	_, err := fmt.Fprintln(t.out, lipgloss.JoinVertical(lipgloss.Left, rows...))

	return err
}

func (t *Terminal) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, t.label.Render(label), t.value.Render(value))
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
