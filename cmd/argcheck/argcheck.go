// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/argspec/pkg/argspec"
	"github.com/yeetrun/argspec/pkg/cli"
	"github.com/yeetrun/argspec/pkg/render"
	"github.com/yeetrun/argspec/pkg/tui"
	"golang.org/x/term"
)

var (
	stdout       io.Writer = os.Stdout
	isTerminalFn           = term.IsTerminal
	noColor      bool
)

type globalFlagsParsed struct {
	NoColor bool `flag:"no-color" help:"Disable colour output (NO_COLOR)"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// exitError ends the process with code without printing anything.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// usageError carries the declaration synopsis shown under a
// missing-arguments failure.
type usageError struct {
	err   error
	usage string
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func run(ctx context.Context, args []string) error {
	globalFlags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		return err
	}
	if globalFlags.NoColor {
		noColor = true
		color.NoColor = true
	}

	// The checked argv may itself contain --help or a command name, so it is
	// kept away from the dispatcher and handed back to the handler untouched.
	args, argv, hasArgv := cutArgv(remaining)
	helpConfig := cli.HelpConfig()
	args = yargs.ApplyAliases(args, helpConfig)
	withArgv := func(h yargs.SubcommandHandler) yargs.SubcommandHandler {
		return func(ctx context.Context, args []string) error {
			if hasArgv {
				args = append(append(args[:len(args):len(args)], "--"), argv...)
			}
			return h(ctx, args)
		}
	}

	handlers := map[string]yargs.SubcommandHandler{
		cli.CommandParse:     withArgv(handleParse),
		cli.CommandGet:       withArgv(handleGet),
		cli.CommandSpecified: withArgv(handleSpecified),
		cli.CommandKinds:     handleKinds,
	}
	err = yargs.RunSubcommandsWithGroups(ctx, args, helpConfig, globalFlagsParsed{}, handlers, nil)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	return err
}

func cutArgv(args []string) (head, argv []string, ok bool) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}

// parseArgv checks argv against reg, attaching the declaration synopsis to
// missing-arguments failures.
func parseArgv(reg *argspec.Registry, argv []string) (*argspec.Args, error) {
	args, err := argspec.Parse(reg, argv)
	if errors.Is(err, argspec.ErrMissingArguments) {
		return nil, &usageError{err: err, usage: cli.Usage(reg)}
	}
	return args, err
}

func handleParse(_ context.Context, args []string) error {
	args = trimCommand(args, cli.CommandParse)
	flags, argv, err := cli.ParseParse(args)
	if err != nil {
		return err
	}
	format, err := outputFormat(flags.Format)
	if err != nil {
		return err
	}
	parsed, err := parseArgv(flags.Registry(), argv)
	if err != nil {
		return err
	}
	entries, err := render.Collect(parsed)
	if err != nil {
		return err
	}
	return render.Write(stdout, format, entries, render.Options{
		Prefix: flags.Prefix,
		Color:  tui.NewColorizer(!noColor && isTerminalFn(int(os.Stdout.Fd()))),
	})
}

func handleGet(_ context.Context, args []string) error {
	args = trimCommand(args, cli.CommandGet)
	flags, name, argv, err := cli.ParseGet(args)
	if err != nil {
		return err
	}
	reg := flags.Registry()
	parsed, err := parseArgv(reg, argv)
	if err != nil {
		return err
	}

	var v argspec.Value
	if flags.Default != nil {
		def := argspec.StringValue(*flags.Default)
		if spec, ok := reg.Spec(name); ok {
			def, err = spec.Coerce(*flags.Default)
			if err != nil {
				return fmt.Errorf("invalid --default: %w", err)
			}
		}
		v, err = parsed.ValueOr(name, def)
	} else {
		v, err = parsed.Value(name)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, v.String())
	return err
}

func handleSpecified(_ context.Context, args []string) error {
	args = trimCommand(args, cli.CommandSpecified)
	flags, name, argv, err := cli.ParseSpecified(args)
	if err != nil {
		return err
	}
	reg := flags.Registry()
	parsed, err := parseArgv(reg, argv)
	if err != nil {
		return err
	}
	if !reg.Has(name) {
		return &argspec.UnrecognizedArgumentError{Name: name, Known: parsed.Names()}
	}
	ok := parsed.Specified(name)
	fmt.Fprintln(stdout, ok)
	if !ok {
		return &exitError{code: 1}
	}
	return nil
}

var kindHelp = map[argspec.Kind]string{
	argspec.KindString:  "any text, kept as given",
	argspec.KindBoolean: "1/true/t or 0/false/f, any case",
	argspec.KindInt:     "base-10 integer; text without digits reads as 0",
	argspec.KindCSV:     "comma separated list, no trimming",
	argspec.KindRegex:   "text, labelled as a pattern (not compiled)",
	argspec.KindEnum:    "one of the declared values: NAME:enum(a|b|c)",
}

func handleKinds(_ context.Context, _ []string) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 3, ' ', 0)
	for _, k := range argspec.Kinds() {
		fmt.Fprintf(w, "%s\t%s\n", k, kindHelp[k])
	}
	return w.Flush()
}

// outputFormat picks the format: the flag, then ARGCHECK_FORMAT, then table
// on a terminal and env otherwise.
func outputFormat(flag string) (render.Format, error) {
	if flag != "" {
		return render.ParseFormat(flag)
	}
	if env := os.Getenv("ARGCHECK_FORMAT"); env != "" {
		f, err := render.ParseFormat(env)
		if err == nil {
			return f, nil
		}
		log.Printf("ignoring ARGCHECK_FORMAT: %v", err)
	}
	if isTerminalFn(int(os.Stdout.Fd())) {
		return render.FormatTable, nil
	}
	return render.FormatEnv, nil
}

func trimCommand(args []string, name string) []string {
	if len(args) > 0 && args[0] == name {
		return args[1:]
	}
	return args
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
	var ue *usageError
	if errors.As(err, &ue) && ue.usage != "" {
		fmt.Fprintf(w, "usage: %s\n", ue.usage)
	}
}

// exitCode maps a run error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 2
}
