/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package presenter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/device-management-toolkit/netinfo/internal/adapter"
	"github.com/device-management-toolkit/netinfo/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ app.Presenter = (*Terminal)(nil)
var _ app.Presenter = (*JSON)(nil)

func sampleInfo() *adapter.Info {
	return &adapter.Info{
		Name:        "Ethernet",
		MAC:         "aa:bb:cc:dd:ee:ff",
		IP:          "10.0.0.5",
		Status:      adapter.StatusActive,
		DHCPEnabled: true,
		Bucket:      adapter.BucketWired,
	}
}

func TestTerminal_Flush(t *testing.T) {
	var buf bytes.Buffer

	term := NewTerminal(&buf, app.MessagesFor("en"), func() string { return "10.0.0.1" })
	term.DisplayAdapter(sampleInfo())
	term.SetRenewalAvailable(true)
	term.DisplayStatus("Network information refreshed.")
	require.NoError(t, term.Flush())

	out := buf.String()
	assert.Contains(t, out, "Network information refreshed.")
	assert.Contains(t, out, "Ethernet (active)")
	assert.Contains(t, out, "aa:bb:cc:dd:ee:ff")
	assert.Contains(t, out, "10.0.0.5")
	assert.Contains(t, out, "10.0.0.1")
	assert.Contains(t, out, "netinfo renew")
	assert.NotContains(t, out, "\x1b[", "plain writers get no escape sequences")
}

func TestTerminal_NoAdapter(t *testing.T) {
	var buf bytes.Buffer

	term := NewTerminal(&buf, app.MessagesFor("ko"), nil)
	term.DisplayAdapter(sampleInfo())
	term.DisplayAdapter(nil)
	term.SetRenewalAvailable(false)
	require.NoError(t, term.Flush())

	out := buf.String()
	assert.Contains(t, out, "어댑터 정보")
	assert.Equal(t, 4, strings.Count(out, "N/A"))
	assert.NotContains(t, out, "netinfo renew")
}

func TestTerminal_DisplayAdapterCopies(t *testing.T) {
	var buf bytes.Buffer

	info := sampleInfo()
	term := NewTerminal(&buf, app.MessagesFor("en"), nil)
	term.DisplayAdapter(info)
	info.Name = "changed"

	require.NoError(t, term.Flush())
	assert.Contains(t, buf.String(), "Ethernet (active)")
}

func TestJSON_Flush(t *testing.T) {
	var buf bytes.Buffer

	presenter := NewJSON(&buf, func() string { return "10.0.0.1" })
	presenter.DisplayAdapter(sampleInfo())
	presenter.SetRenewalAvailable(true)
	presenter.DisplayStatus("first")
	presenter.DisplayStatus("second")
	require.NoError(t, presenter.Flush())

	var result map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "second", result["status"])
	assert.Equal(t, true, result["renewalAvailable"])
	assert.Equal(t, "10.0.0.1", result["gateway"])

	adapterDoc, ok := result["adapter"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ethernet", adapterDoc["name"])
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", adapterDoc["mac"])
	assert.Equal(t, "10.0.0.5", adapterDoc["ip"])
	assert.Equal(t, "active", adapterDoc["status"])
	assert.Equal(t, true, adapterDoc["dhcpEnabled"])
	assert.Equal(t, "wired", adapterDoc["bucket"])
}

func TestJSON_NoAdapter(t *testing.T) {
	var buf bytes.Buffer

	presenter := NewJSON(&buf, func() string { return "10.0.0.1" })
	presenter.DisplayAdapter(nil)
	presenter.DisplayStatus("No active network connection found.")
	require.NoError(t, presenter.Flush())

	var result map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Nil(t, result["adapter"])
	assert.NotContains(t, result, "gateway")
	assert.Equal(t, false, result["renewalAvailable"])
}

func TestJSON_RenewalSurvivesRefresh(t *testing.T) {
	var buf bytes.Buffer

	presenter := NewJSON(&buf, nil)
	presenter.DisplayStatus("Renewing IP address...")
	presenter.DisplayStatus("Error: run the program with administrator privileges.")
	presenter.DisplayRenewal(false, "Error: run the program with administrator privileges.")

	// the deferred refresh lands afterwards
	presenter.DisplayAdapter(sampleInfo())
	presenter.SetRenewalAvailable(true)
	presenter.DisplayStatus("Network information refreshed.")
	require.NoError(t, presenter.Flush())

	var result map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "Network information refreshed.", result["status"])

	renewalDoc, ok := result["renewal"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, renewalDoc["ok"])
	assert.Equal(t, "Error: run the program with administrator privileges.", renewalDoc["message"])
}
