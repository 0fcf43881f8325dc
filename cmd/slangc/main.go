// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command slangc compiles shaders described by TOML manifests.
//
// Usage:
//
//	slangc build [-j N] [-o DIR] manifest.toml...
//	slangc reflect [--format table|json|msgpack] manifest.toml
//	slangc dis shader.spv
//	slangc version
//
// The native compiler is libslang, linked when built with -tags slang.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/slang"
	"github.com/gogpu/slang/native"
)

const slangcVersion = "0.1.0-dev"

// app carries what the commands share. Tests build one around a
// simulated backend.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	backend native.API // nil selects the registered default
	verbose bool
	log     *zap.Logger
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	if err := a.execute(os.Args[1:]...); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "slangc",
		Short:         "Slang shader compiler",
		Long:          "slangc compiles shaders described by TOML manifests and inspects their reflection.",
		Version:       slangcVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log compiler activity")

	root.AddCommand(a.buildCmd())
	root.AddCommand(a.reflectCmd())
	root.AddCommand(a.disCmd())
	root.AddCommand(a.versionCmd())

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage", err, cmd.CommandPath())
	})
	return root
}

func (a *app) execute(args ...string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		errorColor.Fprintf(a.stderr, "error: %v\n", err)
	}
	return err
}

func (a *app) setupLogger() error {
	if a.log != nil {
		return nil
	}
	if !a.verbose {
		a.log = zap.NewNop()
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = l
	return nil
}

func (a *app) newSession() (*slang.Session, error) {
	opts := slang.DefaultOptions()
	opts.Backend = a.backend
	opts.Logger = a.log
	return slang.NewSessionWithOptions(opts)
}
