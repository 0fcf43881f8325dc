// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/slang/native"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the slangc version and linked backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backends := "none (build with -tags slang)"
			if names := native.Backends(); len(names) > 0 {
				backends = strings.Join(names, ", ")
			}
			a.printf(a.stdout, "slangc version %s\nbackends: %s\n", slangcVersion, backends)
			return nil
		},
	}
}
