/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/device-management-toolkit/netinfo/internal/adapter"
	"github.com/device-management-toolkit/netinfo/pkg/network"
	"github.com/device-management-toolkit/netinfo/pkg/utils"
	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

// Configuration is read-only: the tool never writes it back.
type Configuration struct {
	Language       string        `yaml:"language" env:"NETINFO_LANG" env-default:"en" env-description:"message language (en, ko)"`
	Encoding       string        `yaml:"encoding" env:"NETINFO_ENCODING" env-description:"charset of the OS configuration report"`
	CommandTimeout time.Duration `yaml:"commandTimeout" env:"NETINFO_COMMAND_TIMEOUT" env-default:"30s" env-description:"limit for each OS network command"`
	Tokens         Tokens        `yaml:"tokens"`
}

// Tokens overrides the locale tables; empty lists keep the built-in defaults.
type Tokens struct {
	Wired         []string `yaml:"wired" env:"NETINFO_WIRED_TOKENS" env-separator:","`
	Wireless      []string `yaml:"wireless" env:"NETINFO_WIRELESS_TOKENS" env-separator:","`
	Loopback      []string `yaml:"loopback" env:"NETINFO_LOOPBACK_NAMES" env-separator:","`
	AddressLabels []string `yaml:"addressLabels" env:"NETINFO_ADDRESS_LABELS" env-separator:","`
	DHCPLabels    []string `yaml:"dhcpLabels" env:"NETINFO_DHCP_LABELS" env-separator:","`
	Affirmatives  []string `yaml:"affirmatives" env:"NETINFO_DHCP_AFFIRMATIVES" env-separator:","`
}

// LoadConfig reads path, when it exists, then applies NETINFO_* environment
// overrides. A missing file is an error only when required is set.
func LoadConfig(path string, required bool) (Configuration, error) {
	var cfg Configuration

	err := readConfig(path, required, &cfg)
	if err != nil {
		log.Error("failed reading configuration: ", err)

		return cfg, fmt.Errorf("%w: %w", utils.FailedReadingConfiguration, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %w", utils.MissingOrInvalidConfiguration, err)
	}

	return cfg, nil
}

func readConfig(path string, required bool, cfg *Configuration) error {
	if path != "" {
		_, err := os.Stat(path)

		switch {
		case err == nil:
			log.Debugf("Using configuration file: %s", path)

			return cleanenv.ReadConfig(path, cfg)
		case !errors.Is(err, fs.ErrNotExist) || required:
			return err
		}

		log.Debugf("configuration file %s not found, using defaults", path)
	}

	return cleanenv.ReadEnv(cfg)
}

func (c *Configuration) applyDefaults() {
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	if c.Language == "" {
		c.Language = "en"
	}

	if c.CommandTimeout == 0 {
		c.CommandTimeout = network.DefaultCommandTimeout
	}
}

// SetLanguage overrides the configured message language.
func (c *Configuration) SetLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang != "" {
		c.Language = lang
	}
}

// EncodingName is the configured charset, or the one the host's network
// tools write when none is configured.
func (c Configuration) EncodingName() string {
	if c.Encoding != "" {
		return c.Encoding
	}

	return systemEncoding(c.Language)
}

// Validate checks values that cannot be repaired with defaults.
func (c Configuration) Validate() error {
	if c.CommandTimeout < 0 {
		return fmt.Errorf("commandTimeout must be positive, got %s", c.CommandTimeout)
	}

	if _, err := adapter.ResolveEncoding(c.Encoding); err != nil {
		return err
	}

	return nil
}

// TokenTable merges the configured tokens over the built-in table.
func (c Configuration) TokenTable() adapter.TokenTable {
	return adapter.TokenTable{
		Wired:         c.Tokens.Wired,
		Wireless:      c.Tokens.Wireless,
		Loopback:      c.Tokens.Loopback,
		AddressLabels: c.Tokens.AddressLabels,
		DHCPLabels:    c.Tokens.DHCPLabels,
		Affirmatives:  c.Tokens.Affirmatives,
	}.WithDefaults()
}

// Decoder returns the charset of the OS configuration report. A detected
// charset that cannot be resolved falls back to UTF-8.
func (c Configuration) Decoder() (encoding.Encoding, error) {
	if c.Encoding != "" {
		return adapter.ResolveEncoding(c.Encoding)
	}

	name := systemEncoding(c.Language)

	enc, err := adapter.ResolveEncoding(name)
	if err != nil {
		log.Debugf("detected charset %q is not supported, reading the report as UTF-8", name)

		return adapter.ResolveEncoding("")
	}

	return enc, nil
}
