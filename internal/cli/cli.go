/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/device-management-toolkit/netinfo/internal/adapter"
	"github.com/device-management-toolkit/netinfo/internal/app"
	"github.com/device-management-toolkit/netinfo/internal/commands"
	"github.com/device-management-toolkit/netinfo/internal/config"
	"github.com/device-management-toolkit/netinfo/internal/lease"
	"github.com/device-management-toolkit/netinfo/internal/presenter"
	"github.com/device-management-toolkit/netinfo/pkg/network"
	"github.com/device-management-toolkit/netinfo/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Global flags that apply to all commands
type Globals struct {
	Config     string `help:"Path to configuration file (default: ${config_file} when present)" name:"config" type:"path"`
	Lang       string `help:"Message language (en, ko), overrides the configuration file" name:"lang"`
	LogLevel   string `help:"Set log level" default:"info" enum:"trace,debug,info,warn,error,fatal,panic"`
	JsonOutput bool   `help:"Output in JSON format" name:"json" short:"j"`
	Verbose    bool   `help:"Enable verbose logging" name:"verbose" short:"v"`
}

// CLI represents the complete command line interface
type CLI struct {
	Globals

	Show    commands.ShowCmd    `cmd:"" default:"withargs" help:"Display the primary network adapter (default)"`
	Renew   commands.RenewCmd   `cmd:"" help:"Release and renew the DHCP lease, then display the refreshed adapter"`
	Version commands.VersionCmd `cmd:"version" help:"Display the current version of netinfo"`
}

// Dependencies replaces the OS-facing collaborators, mainly for tests.
// Zero fields fall back to the real implementations.
type Dependencies struct {
	Networker network.OSNetworker
	Scheduler lease.Scheduler
	Out       io.Writer
	Gateway   func() string
}

// AfterApply sets up the context and applies global settings after flags are parsed
func (g *Globals) AfterApply(ctx *kong.Context) error {
	if g.Verbose {
		log.SetLevel(log.TraceLevel)
	} else {
		lvl, err := log.ParseLevel(g.LogLevel)
		if err != nil {
			log.Warn(err)
			log.SetLevel(log.InfoLevel)
		} else {
			log.SetLevel(lvl)
		}
	}

	if g.JsonOutput {
		log.SetFormatter(&log.JSONFormatter{
			DisableHTMLEscape: true,
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	return nil
}

// Parse creates a new Kong parser and parses the command line
func Parse(args []string) (*kong.Context, *CLI, error) {
	var cli CLI

	helpOpts := kong.HelpOptions{Compact: true}

	parser, err := kong.New(&cli,
		kong.Name(utils.ProjectName),
		kong.Description(utils.HelpHeader),
		kong.UsageOnError(),
		kong.DefaultEnvars(utils.EnvPrefix),
		kong.ConfigureHelp(helpOpts),
		kong.Vars{"config_file": utils.ConfigFile},
	)
	if err != nil {
		return nil, nil, err
	}

	// Slice off program name if present
	var parseArgs []string
	if len(args) > 1 {
		parseArgs = args[1:]
	} else {
		parseArgs = []string{}
	}

	ctx, perr := parser.Parse(parseArgs)
	if perr != nil {
		return nil, nil, perr
	}

	return ctx, &cli, nil
}

// Execute runs the parsed command against the host's network stack
func Execute(args []string) error {
	return ExecuteWith(args, Dependencies{})
}

// ExecuteWith runs the parsed command with the provided collaborators
func ExecuteWith(args []string, deps Dependencies) error {
	kctx, cli, err := Parse(args)
	if err != nil {
		return fmt.Errorf("%w: %w", utils.IncorrectCommandLineParameters, err)
	}

	configPath, required := cli.Config, cli.Config != ""
	if configPath == "" {
		configPath = utils.ConfigFile
	}

	cfg, err := config.LoadConfig(configPath, required)
	if err != nil {
		return err
	}

	cfg.SetLanguage(cli.Lang)

	appCtx, err := wire(cfg, cli.Globals, deps)
	if err != nil {
		return err
	}

	return kctx.Run(appCtx)
}

// wire assembles selector, controller and service around one presenter.
func wire(cfg config.Configuration, globals Globals, deps Dependencies) (*commands.Context, error) {
	enc, err := cfg.Decoder()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.MissingOrInvalidConfiguration, err)
	}

	networker := deps.Networker
	if networker == nil {
		networker = network.NewOSNetworker(cfg.CommandTimeout)
	}

	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	gateway := deps.Gateway
	if gateway == nil {
		gateway = network.DefaultGateway
	}

	messages := app.MessagesFor(cfg.Language)
	tokens := cfg.TokenTable()

	log.Debugf("language=%s encoding=%q timeout=%s", cfg.Language, cfg.EncodingName(), cfg.CommandTimeout)

	classifier := adapter.NewClassifier(networker, tokens, enc)
	selector := adapter.NewSelector(networker, tokens, classifier)
	controller := lease.NewController(networker, deps.Scheduler, nil)

	var output commands.Output
	if globals.JsonOutput {
		output = presenter.NewJSON(out, gateway)
	} else {
		output = presenter.NewTerminal(out, messages, gateway)
	}

	service := app.NewService(selector, controller, output, messages)
	controller.SetRefresh(service.DeferredRefresh(context.Background()))

	return &commands.Context{
		Service:    service,
		Renewal:    controller,
		Output:     output,
		Config:     cfg,
		LogLevel:   globals.LogLevel,
		JsonOutput: globals.JsonOutput,
		Verbose:    globals.Verbose,
	}, nil
}
