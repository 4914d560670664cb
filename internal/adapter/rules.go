/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package adapter

import (
	"fmt"
	"strconv"
	"strings"
)

// Bucket ranks adapter candidates; lower values win.
type Bucket int

const (
	BucketWired Bucket = iota
	BucketWireless
	BucketOther
)

func (b Bucket) String() string {
	switch b {
	case BucketWired:
		return "wired"
	case BucketWireless:
		return "wireless"
	case BucketOther:
		return "other"
	default:
		return "custom"
	}
}

// MarshalText writes the bucket name; buckets added through WithRules are
// written as their number.
func (b Bucket) MarshalText() ([]byte, error) {
	switch b {
	case BucketWired, BucketWireless, BucketOther:
		return []byte(b.String()), nil
	default:
		return []byte(strconv.Itoa(int(b))), nil
	}
}

func (b *Bucket) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))

	switch name {
	case "wired":
		*b = BucketWired
	case "wireless":
		*b = BucketWireless
	case "other":
		*b = BucketOther
	default:
		n, err := strconv.Atoi(name)
		if err != nil {
			return fmt.Errorf("unknown adapter bucket %q", string(text))
		}

		*b = Bucket(n)
	}

	return nil
}

// Rule assigns Bucket to every adapter whose name satisfies Match.
type Rule struct {
	Bucket Bucket
	Match  func(name string) bool
}

// NameContains matches names containing any of tokens, ignoring case.
func NameContains(tokens ...string) func(string) bool {
	return func(name string) bool {
		return containsAnyFold(name, tokens)
	}
}

// NewRules builds the default ordered rule list: wired, then wireless.
func NewRules(tokens TokenTable) []Rule {
	return []Rule{
		{Bucket: BucketWired, Match: NameContains(tokens.Wired...)},
		{Bucket: BucketWireless, Match: NameContains(tokens.Wireless...)},
	}
}

// Classify returns the bucket of the first rule matching name, or BucketOther.
func Classify(rules []Rule, name string) Bucket {
	for _, rule := range rules {
		if rule.Match != nil && rule.Match(name) {
			return rule.Bucket
		}
	}

	return BucketOther
}
