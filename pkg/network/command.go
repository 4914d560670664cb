/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrorKind classifies why an OS command failed.
type ErrorKind int

const (
	// KindOther covers timeouts, cancellation and I/O failures.
	KindOther ErrorKind = iota
	// KindNotFound means the executable could not be located or started.
	KindNotFound
	// KindExitStatus means the command ran and exited non-zero.
	KindExitStatus
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindExitStatus:
		return "exit status"
	default:
		return "other"
	}
}

// CommandError reports a failed OS command.
type CommandError struct {
	Command  string
	Kind     ErrorKind
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("'%s' command not found", e.Command)
	case KindExitStatus:
		return fmt.Sprintf("'%s' exited with status %d", e.Command, e.ExitCode)
	default:
		return fmt.Sprintf("'%s' failed: %v", e.Command, e.Err)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// classifyCommandError wraps err, returned while running command, in a CommandError.
func classifyCommandError(command string, err error) error {
	if err == nil {
		return nil
	}

	cmdErr := &CommandError{Command: command, Kind: KindOther, ExitCode: -1, Err: err}

	var exitErr *exec.ExitError

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		// a killed process also surfaces as an ExitError; the timeout is the cause
	case errors.As(err, &exitErr):
		cmdErr.Kind = KindExitStatus
		cmdErr.ExitCode = exitErr.ExitCode()
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		cmdErr.Kind = KindNotFound
	}

	return cmdErr
}

// commandRunner spawns OS commands. Tests swap it out.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

var runCommand commandRunner = execCommand

func execCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	display := strings.TrimSpace(name + " " + strings.Join(args, " "))
	log.Debugf("running %s", display)

	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)

	var stdout bytes.Buffer

	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}

		return nil, classifyCommandError(display, err)
	}

	return stdout.Bytes(), nil
}

// run executes name with the networker's timeout applied.
func (n *RealOSNetworker) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout())
	defer cancel()

	return runCommand(ctx, name, args...)
}
