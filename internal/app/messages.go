/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/device-management-toolkit/netinfo/internal/lease"
	"github.com/device-management-toolkit/netinfo/pkg/network"
)

// Messages is the table of user-visible text for one language.
type Messages struct {
	AdapterLabel string
	MACLabel     string
	IPLabel      string
	GatewayLabel string
	Active       string
	NotAvailable string

	Refreshed     string
	StaticAddress string
	NoAdapter     string
	Renewing      string
	RenewComplete string
	RenewHint     string

	// CommandNotFound takes the tool name.
	CommandNotFound  string
	PermissionDenied string
	// UnknownFailure takes the error text.
	UnknownFailure string
}

var english = Messages{
	AdapterLabel: "Adapter",
	MACLabel:     "MAC Address",
	IPLabel:      "IP Address",
	GatewayLabel: "Gateway",
	Active:       "active",
	NotAvailable: "N/A",

	Refreshed:     "Network information refreshed.",
	StaticAddress: "Static IP detected (IP renewal unavailable).",
	NoAdapter:     "No active network connection found.",
	Renewing:      "Renewing IP address...",
	RenewComplete: "IP renewal complete! Information will update shortly.",
	RenewHint:     "DHCP lease renewal is available: run 'netinfo renew'.",

	CommandNotFound:  "Error: '%s' command not found.",
	PermissionDenied: "Error: run the program with administrator privileges.",
	UnknownFailure:   "Unknown error: %s",
}

var korean = Messages{
	AdapterLabel: "어댑터 정보",
	MACLabel:     "MAC 주소",
	IPLabel:      "IP 주소",
	GatewayLabel: "게이트웨이",
	Active:       "활성화",
	NotAvailable: "N/A",

	Refreshed:     "정보를 성공적으로 새로고침했습니다.",
	StaticAddress: "고정 IP가 감지되었습니다. (IP 재할당 불가)",
	NoAdapter:     "활성화된 네트워크 연결을 찾을 수 없습니다.",
	Renewing:      "IP 주소 재할당 중...",
	RenewComplete: "IP 재할당 완료! 잠시 후 정보가 업데이트됩니다.",
	RenewHint:     "IP 재할당 가능: 'netinfo renew'를 실행하세요.",

	CommandNotFound:  "오류: '%s' 명령을 찾을 수 없습니다.",
	PermissionDenied: "오류 발생: 관리자 권한으로 프로그램을 실행해야 합니다.",
	UnknownFailure:   "알 수 없는 오류 발생: %s",
}

// MessagesFor returns the table for lang, falling back to English.
func MessagesFor(lang string) Messages {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "ko", "ko-kr", "kor", "korean":
		return korean
	default:
		return english
	}
}

// ForError turns a renewal failure into the status line shown to the user.
func (m Messages) ForError(err error) string {
	var leaseErr *lease.Error
	if !errors.As(err, &leaseErr) {
		return fmt.Sprintf(m.UnknownFailure, err)
	}

	switch leaseErr.Kind {
	case lease.KindCommandNotFound:
		return fmt.Sprintf(m.CommandNotFound, toolName(err))
	case lease.KindPermissionDenied:
		return m.PermissionDenied
	default:
		cause := leaseErr.Err
		if cause == nil {
			cause = leaseErr
		}

		return fmt.Sprintf(m.UnknownFailure, cause)
	}
}

func toolName(err error) string {
	var cmdErr *network.CommandError
	if errors.As(err, &cmdErr) {
		if fields := strings.Fields(cmdErr.Command); len(fields) > 0 {
			return fields[0]
		}
	}

	return "ipconfig"
}
