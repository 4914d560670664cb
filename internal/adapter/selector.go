/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package adapter

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/device-management-toolkit/netinfo/pkg/network"
	"github.com/device-management-toolkit/netinfo/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Selector picks the primary adapter from the OS interface table.
type Selector struct {
	networker  network.OSNetworker
	rules      []Rule
	loopback   []string
	classifier DHCPClassifier
}

// DHCPClassifier decides whether the adapter owning mac is DHCP-managed.
type DHCPClassifier interface {
	IsDHCPEnabled(ctx context.Context, mac string) bool
}

// NewSelector builds a Selector with the default rule list for tokens.
func NewSelector(networker network.OSNetworker, tokens TokenTable, classifier DHCPClassifier) *Selector {
	tokens = tokens.WithDefaults()

	return &Selector{
		networker:  networker,
		rules:      NewRules(tokens),
		loopback:   tokens.Loopback,
		classifier: classifier,
	}
}

// WithRules replaces the ordered rule list; rules are evaluated first to last.
func (s *Selector) WithRules(rules ...Rule) *Selector {
	s.rules = rules

	return s
}

// SelectPrimaryAdapter returns the best candidate adapter. The boolean is false
// when no interface qualifies, which is a normal outcome and not an error.
// DHCP classification runs only for the chosen adapter.
func (s *Selector) SelectPrimaryAdapter(ctx context.Context) (Info, bool, error) {
	ifaces, err := s.networker.Interfaces(ctx)
	if err != nil {
		log.Warn("unable to enumerate network interfaces: ", err)

		return Info{}, false, fmt.Errorf("%w: %w", utils.OSNetworkInterfacesLookupFailed, err)
	}

	var (
		best  Info
		found bool
	)

	for _, iface := range ifaces {
		info, ok := s.candidate(iface)
		if !ok {
			continue
		}

		log.Tracef("candidate %q bucket=%s ip=%s", info.Name, info.Bucket, info.IP)

		// strict comparison keeps the first discovered adapter within a bucket
		if !found || info.Bucket < best.Bucket {
			best = info
			found = true
		}
	}

	if !found {
		log.Debug("no active adapter found")

		return Info{}, false, nil
	}

	if s.classifier != nil {
		best.DHCPEnabled = s.classifier.IsDHCPEnabled(ctx, best.MAC)
	}

	log.Debugf("selected adapter %q (%s), dhcp=%t", best.Name, best.Bucket, best.DHCPEnabled)

	return best, true, nil
}

func (s *Selector) candidate(iface network.Interface) (Info, bool) {
	if iface.Loopback || equalsAnyFold(iface.Name, s.loopback) {
		return Info{}, false
	}

	if !iface.Up {
		return Info{}, false
	}

	mac := strings.TrimSpace(iface.HardwareAddr)
	if mac == "" {
		return Info{}, false
	}

	ip := FirstIPv4(iface.Addrs)
	if ip == "" {
		return Info{}, false
	}

	return Info{
		Name:   iface.Name,
		MAC:    utils.NormalizeMAC(mac),
		IP:     ip,
		Status: StatusActive,
		Bucket: Classify(s.rules, iface.Name),
	}, true
}

// FirstIPv4 returns the first IPv4 address in addrs, which may be in CIDR
// notation or bare, or "" when there is none.
func FirstIPv4(addrs []string) string {
	for _, addr := range addrs {
		addr = strings.TrimSpace(addr)

		var ip net.IP

		if strings.Contains(addr, "/") {
			parsed, _, err := net.ParseCIDR(addr)
			if err != nil {
				continue
			}

			ip = parsed
		} else {
			ip = net.ParseIP(addr)
		}

		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}

	return ""
}
