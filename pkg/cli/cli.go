// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argspec/pkg/argspec"
)

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

// Decls holds the declarations given with --required and --optional.
type Decls struct {
	Required []argspec.Spec
	Optional []argspec.Spec
}

// Registry builds the argspec registry for the declarations.
func (d Decls) Registry() *argspec.Registry {
	return argspec.NewRegistry(d.Required, d.Optional)
}

type ParseFlags struct {
	Decls
	Format string
	Prefix string
}

type GetFlags struct {
	Decls
	// Default is the per-call default; nil when --default was not given.
	Default *string
}

type SpecifiedFlags struct {
	Decls
}

type parseFlagsParsed struct {
	Required string `flag:"required" short:"r" help:"Required declarations, space separated (NAME[:KIND])"`
	Optional string `flag:"optional" short:"o" help:"Optional declarations, space separated (NAME[:KIND][=DEFAULT])"`
	Format   string `flag:"format" short:"f" help:"Output format (table|json|yaml|toml|env)"`
	Prefix   string `flag:"prefix" help:"Variable name prefix for env output"`
}

type getFlagsParsed struct {
	Required string  `flag:"required" short:"r" help:"Required declarations, space separated (NAME[:KIND])"`
	Optional string  `flag:"optional" short:"o" help:"Optional declarations, space separated (NAME[:KIND][=DEFAULT])"`
	Default  *string `flag:"default" short:"d" help:"Value to print when NAME was not supplied"`
}

type specifiedFlagsParsed struct {
	Required string `flag:"required" short:"r" help:"Required declarations, space separated (NAME[:KIND])"`
	Optional string `flag:"optional" short:"o" help:"Optional declarations, space separated (NAME[:KIND][=DEFAULT])"`
}

const (
	CommandParse     = "parse"
	CommandGet       = "get"
	CommandSpecified = "specified"
	CommandKinds     = "kinds"
)

var commandInfos = map[string]CommandInfo{
	CommandParse: {Name: CommandParse, Description: "Validate ARGS and print every resolved value", Usage: "-- ARGS...", Examples: []string{
		`argcheck parse -r "name env:enum(dev|prod)" -o "count:int=1 tags:csv" -- "$@"`,
		`eval "$(argcheck parse -f env --prefix ARG_ -r "name" -- "$@")"`,
	}},
	CommandGet: {Name: CommandGet, Description: "Validate ARGS and print the value of one argument", Usage: "NAME -- ARGS...", Examples: []string{
		`argcheck get count -o "count:int=1" -- "$@"`,
		`argcheck get region -o "region" --default us-east -- "$@"`,
	}},
	CommandSpecified: {Name: CommandSpecified, Description: "Validate ARGS and report whether NAME was supplied (exit 1 if not)", Usage: "NAME -- ARGS...", Examples: []string{
		`if argcheck specified verbose -o "verbose:bool=false" -- "$@" >/dev/null; then ...; fi`,
	}, Aliases: []string{"has"}},
	CommandKinds: {Name: CommandKinds, Description: "List the argument kinds"},
}

func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

// HelpConfig returns the yargs help metadata for argcheck.
func HelpConfig() yargs.HelpConfig {
	subcommands := make(map[string]yargs.SubCommandInfo, len(commandInfos))
	for name, info := range commandInfos {
		subcommands[name] = toSubCommandInfo(name, info)
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "argcheck",
			Description: "Validate a script's long options against typed declarations",
			Examples: []string{
				`argcheck parse -r "name:string" -o "env:enum(dev|prod)=dev" -- --name=web`,
				`argcheck kinds`,
			},
		},
		SubCommands: subcommands,
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

// ParseParse parses the flags of "argcheck parse". It returns the flags and
// the argument vector to check (everything after "--").
func ParseParse(args []string) (ParseFlags, []string, error) {
	parseArgs, argv := splitArgsAtDoubleDash(args)
	parsed, err := parseFlags[parseFlagsParsed](parseArgs)
	if err != nil {
		return ParseFlags{}, nil, err
	}
	if err := requireNoArgs(CommandParse, parsed.Args); err != nil {
		return ParseFlags{}, nil, err
	}
	decls, err := parseDecls(parsed.Flags.Required, parsed.Flags.Optional)
	if err != nil {
		return ParseFlags{}, nil, err
	}
	flags := ParseFlags{
		Decls:  decls,
		Format: parsed.Flags.Format,
		Prefix: parsed.Flags.Prefix,
	}
	return flags, argv, nil
}

// ParseGet parses the flags of "argcheck get" and returns the flags, the
// argument name and the argument vector to check.
func ParseGet(args []string) (GetFlags, string, []string, error) {
	parseArgs, argv := splitArgsAtDoubleDash(args)
	parsed, err := parseFlags[getFlagsParsed](parseArgs)
	if err != nil {
		return GetFlags{}, "", nil, err
	}
	if err := requireArgs(CommandGet, parsed.Args, 1); err != nil {
		return GetFlags{}, "", nil, err
	}
	decls, err := parseDecls(parsed.Flags.Required, parsed.Flags.Optional)
	if err != nil {
		return GetFlags{}, "", nil, err
	}
	flags := GetFlags{
		Decls:   decls,
		Default: parsed.Flags.Default,
	}
	return flags, parsed.Args[0], argv, nil
}

// ParseSpecified parses the flags of "argcheck specified".
func ParseSpecified(args []string) (SpecifiedFlags, string, []string, error) {
	parseArgs, argv := splitArgsAtDoubleDash(args)
	parsed, err := parseFlags[specifiedFlagsParsed](parseArgs)
	if err != nil {
		return SpecifiedFlags{}, "", nil, err
	}
	if err := requireArgs(CommandSpecified, parsed.Args, 1); err != nil {
		return SpecifiedFlags{}, "", nil, err
	}
	decls, err := parseDecls(parsed.Flags.Required, parsed.Flags.Optional)
	if err != nil {
		return SpecifiedFlags{}, "", nil, err
	}
	return SpecifiedFlags{Decls: decls}, parsed.Args[0], argv, nil
}

func parseDecls(required, optional string) (Decls, error) {
	req, err := ParseDecls(required, false)
	if err != nil {
		return Decls{}, err
	}
	opt, err := ParseDecls(optional, true)
	if err != nil {
		return Decls{}, err
	}
	return Decls{Required: req, Optional: opt}, nil
}

type parsedFlags[T any] struct {
	Flags  T
	Args   []string
	Parser *yargs.Parser
}

func parseFlags[T any](args []string) (parsedFlags[T], error) {
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut, Parser: result.Parser}, nil
}

func splitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}

func requireArgs(subcmd string, args []string, count int) error {
	if len(args) != count {
		return fmt.Errorf("'%s' requires %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}

func requireNoArgs(subcmd string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("'%s' takes no arguments before \"--\", got %q", subcmd, strings.Join(args, " "))
	}
	return nil
}
