/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMAC(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"colon lower", "aa:bb:cc:dd:ee:ff", "aa:bb:cc:dd:ee:ff"},
		{"colon upper", "AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:ff"},
		{"hyphen upper", "AA-BB-CC-DD-EE-FF", "aa:bb:cc:dd:ee:ff"},
		{"padded", "  00-1A-2B-3C-4D-5E ", "00:1a:2b:3c:4d:5e"},
		{"garbage", "not-a-mac", "not-a-mac"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMAC(tt.input))
		})
	}
}

func TestMACForms(t *testing.T) {
	assert.Equal(t, []string{"aa:bb:cc:dd:ee:ff", "aa-bb-cc-dd-ee-ff"}, MACForms("AA-BB-CC-DD-EE-FF"))
	assert.Equal(t, []string{"aa:bb:cc:dd:ee:ff", "aa-bb-cc-dd-ee-ff"}, MACForms("aa:bb:cc:dd:ee:ff"))
	assert.Nil(t, MACForms(""))
	assert.Nil(t, MACForms("   "))
	assert.Equal(t, []string{"opaque"}, MACForms("OPAQUE"))
}

func TestCustomError(t *testing.T) {
	assert.Equal(t, "NoActiveAdapter", NoActiveAdapter.Error())
	assert.Equal(t, "LeaseCommandPermissionDenied: insufficient privilege", LeaseCommandPermissionDenied.Error())

	wrapped := fmt.Errorf("renew: %w", LeaseCommandNotFound)
	assert.True(t, errors.Is(wrapped, LeaseCommandNotFound))
	assert.False(t, errors.Is(wrapped, LeaseCommandPermissionDenied))

	var custom CustomError

	assert.True(t, errors.As(wrapped, &custom))
	assert.Equal(t, 160, custom.Code)
}
