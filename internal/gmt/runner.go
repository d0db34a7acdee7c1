// Package gmt invokes the external Generic Mapping Tools binary. All
// interpolation, contouring and rendering happens in the toolkit; this
// package only assembles and executes its command lines.
package gmt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner executes toolkit subcommands. With DryRun set, command lines
// are recorded and printed instead of executed. Recorded is appended to
// in both modes so pipelines can be asserted on in tests.
type Runner struct {
	Bin    string
	Dir    string // working directory for invocations
	DryRun bool
	Log    *zap.Logger

	Recorded []string
}

// NewRunner creates a runner for the given toolkit binary.
func NewRunner(bin string, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Bin: bin, Log: log}
}

// Run executes one subcommand, discarding its stdout. The first failing
// call aborts the whole pipeline, so the error carries the subcommand
// name and its combined output.
func (r *Runner) Run(ctx context.Context, args ...string) error {
	return r.run(ctx, "", "", false, args)
}

// RunTo executes one subcommand with stdout written to path. With
// appendTo set the file is appended to, the toolkit's layered
// PostScript convention.
func (r *Runner) RunTo(ctx context.Context, path string, appendTo bool, args ...string) error {
	return r.run(ctx, "", path, appendTo, args)
}

// RunStdin executes one subcommand feeding stdin, with stdout appended
// to path. Used for inline marker coordinates and text placement.
func (r *Runner) RunStdin(ctx context.Context, stdin, path string, args ...string) error {
	return r.run(ctx, stdin, path, true, args)
}

func (r *Runner) run(ctx context.Context, stdin, outPath string, appendTo bool, args []string) error {
	line := r.commandLine(stdin, outPath, appendTo, args)
	r.Recorded = append(r.Recorded, line)

	if r.DryRun {
		fmt.Println(line)
		return nil
	}

	r.Log.Debug("gmt", zap.String("cmd", line))

	cmd := exec.CommandContext(ctx, r.Bin, args...)
	cmd.Dir = r.Dir
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if outPath != "" {
		f, err := openOutput(outPath, appendTo)
		if err != nil {
			return err
		}
		defer f.Close()
		cmd.Stdout = f
	} else {
		cmd.Stdout = &stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gmt %s: %w: %s", subcommand(args), err,
			strings.TrimSpace(stderr.String()))
	}
	return nil
}

// commandLine formats an invocation for dry-run output and recording,
// shell-style so a failed pipeline can be replayed by hand.
func (r *Runner) commandLine(stdin, outPath string, appendTo bool, args []string) string {
	var b strings.Builder
	b.WriteString(r.Bin)
	for _, a := range args {
		b.WriteByte(' ')
		if strings.ContainsAny(a, " \t") {
			fmt.Fprintf(&b, "%q", a)
		} else {
			b.WriteString(a)
		}
	}
	if outPath != "" {
		if appendTo {
			b.WriteString(" >> ")
		} else {
			b.WriteString(" > ")
		}
		b.WriteString(outPath)
	}
	if stdin != "" {
		fmt.Fprintf(&b, " <<< %q", stdin)
	}
	return b.String()
}

func openOutput(path string, appendTo bool) (*os.File, error) {
	if appendTo {
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
	return os.Create(path)
}

func subcommand(args []string) string {
	if len(args) == 0 {
		return "?"
	}
	return args[0]
}
