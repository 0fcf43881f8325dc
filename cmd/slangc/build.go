// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/slang"
	"github.com/gogpu/slang/manifest"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	noteColor    = color.New(color.FgCyan)
)

// Output file extensions by target, used when -o names a directory and
// an entry point has no output of its own.
var targetExt = map[slang.CompileTarget]string{
	slang.TargetGLSL:          ".glsl",
	slang.TargetHLSL:          ".hlsl",
	slang.TargetSPIRV:         ".spv",
	slang.TargetSPIRVAssembly: ".spvasm",
	slang.TargetDXBC:          ".dxbc",
	slang.TargetDXBCAssembly:  ".dxbc.asm",
	slang.TargetDXIL:          ".dxil",
	slang.TargetDXILAssembly:  ".dxil.asm",
}

// outputMu serializes writes from build workers.
var outputMu sync.Mutex

func (a *app) buildCmd() *cobra.Command {
	var (
		jobs   int
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "build [flags] manifest.toml...",
		Short: "Compile shader manifests",
		Long: "Compile each manifest in its own session and write every entry point's code\n" +
			"to the output named in the manifest.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.build(args, jobs, outDir)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of manifests compiled in parallel")
	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "", "write all outputs to this directory")
	return cmd
}

func (a *app) build(paths []string, jobs int, outDir string) error {
	if jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
	}

	var (
		g      errgroup.Group
		failed atomic.Int32
	)
	g.SetLimit(jobs)
	for _, path := range paths {
		g.Go(func() error {
			if err := a.buildManifest(path, outDir); err != nil {
				failed.Add(1)
				a.report(path, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d manifests failed", n, len(paths))
	}
	return nil
}

func (a *app) buildManifest(path, outDir string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	c, err := a.compile(m)
	if err != nil {
		return err
	}
	defer c.Close()

	diag, err := c.request.Diagnostics()
	if err != nil {
		return err
	}
	if diag != "" {
		a.printDiagnostics(path, diag)
	}

	for _, out := range c.outputs {
		dest := out.Path
		if outDir != "" {
			name := filepath.Base(out.Path)
			if out.Path == "" {
				name = out.Name + targetExt[m.Target]
				if out.Unit != "" {
					name = out.Unit + "-" + name
				}
			}
			dest = filepath.Join(outDir, name)
		}
		if dest == "" {
			continue
		}

		code := c.request.EntryPointCode(out.Index)
		if len(code) == 0 {
			return fmt.Errorf("entry point %q produced no code", out.Name)
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, code, 0o644); err != nil {
			return err
		}
		a.log.Debug("wrote entry point", zap.String("entry_point", out.Name), zap.String("path", dest), zap.Int("bytes", len(code)))
		a.printf(a.stdout, "%s: wrote %s (%d bytes)\n", path, dest, len(code))
	}
	return nil
}

// compiled is a compile result together with the session that owns it.
type compiled struct {
	session *slang.Session
	request *slang.CompiledRequest
	outputs []manifest.Output
}

// Close releases the request, then the session.
func (c *compiled) Close() {
	c.request.Close()
	c.session.Close()
}

// compile compiles m in a fresh session.
func (a *app) compile(m *manifest.Manifest) (_ *compiled, err error) {
	s, err := a.newSession()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	req, err := s.CreateCompileRequest()
	if err != nil {
		return nil, err
	}
	defer req.Close()

	outputs, err := m.Apply(req)
	if err != nil {
		return nil, err
	}
	cr, err := req.Compile()
	if err != nil {
		return nil, err
	}
	return &compiled{session: s, request: cr, outputs: outputs}, nil
}

func (a *app) report(path string, err error) {
	var ce *slang.CompileError
	if errors.As(err, &ce) {
		a.printDiagnostics(path, ce.Diagnostics)
		err = errors.New("compilation failed")
	}
	outputMu.Lock()
	defer outputMu.Unlock()
	errorColor.Fprint(a.stderr, "error: ")
	fmt.Fprintf(a.stderr, "%s: %v\n", path, err)
}

// printDiagnostics writes compiler output to stderr, coloring each line
// by severity.
func (a *app) printDiagnostics(path, diag string) {
	outputMu.Lock()
	defer outputMu.Unlock()
	fmt.Fprintf(a.stderr, "%s:\n", path)
	for line := range strings.Lines(diag) {
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.Contains(line, ": error"):
			errorColor.Fprintln(a.stderr, line)
		case strings.Contains(line, ": warning"):
			warningColor.Fprintln(a.stderr, line)
		case strings.Contains(line, ": note"):
			noteColor.Fprintln(a.stderr, line)
		default:
			fmt.Fprintln(a.stderr, line)
		}
	}
}

func (a *app) printf(w io.Writer, format string, args ...any) {
	outputMu.Lock()
	defer outputMu.Unlock()
	fmt.Fprintf(w, format, args...)
}
