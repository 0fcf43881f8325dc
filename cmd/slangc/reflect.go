// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gogpu/slang/manifest"
	"github.com/gogpu/slang/snapshot"
)

const formatTable = "table"

func (a *app) reflectCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "reflect [flags] manifest.toml",
		Short: "Print the reflection of a compiled manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reflect(args[0], strings.ToLower(format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table|json|msgpack)")
	return cmd
}

func (a *app) reflect(path, format string) error {
	var encoding snapshot.Format
	if format != formatTable {
		var err error
		if encoding, err = snapshot.ParseFormat(format); err != nil {
			return err
		}
	}

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	c, err := a.compile(m)
	if err != nil {
		return err
	}
	p, err := snapshot.Take(c.request.Reflection())
	c.Close()
	if err != nil {
		return err
	}

	if format == formatTable {
		a.printTables(p)
		return nil
	}
	return p.Encode(a.stdout, encoding)
}

func (a *app) printTables(p *snapshot.Program) {
	var rows [][]string
	for _, param := range p.Parameters {
		rows = appendParameterRows(rows, "", param)
	}
	table := tablewriter.NewWriter(a.stdout)
	table.SetHeader([]string{"PARAMETER", "KIND", "CATEGORY", "OFFSET", "SPACE", "SIZE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()

	if len(p.EntryPoints) == 0 {
		return
	}
	fmt.Fprintln(a.stdout)

	rows = rows[:0]
	for _, ep := range p.EntryPoints {
		threads := "-"
		if ep.ThreadGroupSize != nil {
			s := ep.ThreadGroupSize
			threads = fmt.Sprintf("%d x %d x %d", s[0], s[1], s[2])
		}
		rows = append(rows, []string{ep.Name, ep.Stage.String(), threads, strconv.Itoa(len(ep.Parameters))})
	}
	table = tablewriter.NewWriter(a.stdout)
	table.SetHeader([]string{"ENTRY POINT", "STAGE", "THREAD GROUP", "PARAMETERS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
}

// appendParameterRows adds one row per binding of param, then rows for
// the fields of a struct or of the struct inside a buffer.
func appendParameterRows(rows [][]string, prefix string, param snapshot.Parameter) [][]string {
	name := prefix + param.Name
	kind := param.Type.Kind.String()
	if param.Type.Name != "" {
		kind = param.Type.Name
	}
	if len(param.Bindings) == 0 {
		rows = append(rows, []string{name, kind, "-", "-", "-", "-"})
	}
	for _, b := range param.Bindings {
		size := "-"
		for _, u := range param.Type.Usage {
			if u.Category == b.Category {
				size = strconv.FormatUint(u.Size, 10)
			}
		}
		rows = append(rows, []string{
			name, kind, b.Category.String(),
			strconv.FormatUint(b.Offset, 10), strconv.FormatUint(b.Space, 10), size,
		})
	}

	fields := param.Type.Fields
	if param.Type.Element != nil {
		fields = param.Type.Element.Fields
	}
	for _, f := range fields {
		rows = appendParameterRows(rows, name+".", f)
	}
	return rows
}
