// Copyright Martin Halsall, 2026. All rights reserved.

package batch

import (
	"fmt"
	"os/exec"
)

// DefaultCommand is the extractor binary invoked when none is configured.
const DefaultCommand = "trade-invoice-extractor"

// Extractor runs the invoice extractor for a single PDF. The external tool
// is the sole contract boundary of the batch runner; keeping it behind this
// interface lets tests substitute a fake without touching the orchestration.
type Extractor interface {
	// Extract invokes the extractor with a vendor profile name, an input
	// PDF path, and an output path. A non-nil error means the extraction
	// failed for this file.
	Extract(vendor, inputPath, outputPath string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// CommandExtractor invokes an external extractor binary with
// -v VENDOR -i INPUT -o OUTPUT flags, blocking until the process exits.
type CommandExtractor struct {
	command string
	exec    executor
}

var defaultExec = &osExecutor{}

// NewCommandExtractor creates an extractor for the given binary. An empty
// command falls back to DefaultCommand. It verifies that the binary exists
// on PATH before returning.
func NewCommandExtractor(command string) (*CommandExtractor, error) {
	return newCommandExtractor(command, defaultExec)
}

func newCommandExtractor(command string, exec executor) (*CommandExtractor, error) {
	if command == "" {
		command = DefaultCommand
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("extractor command %q not found on PATH: %w", command, err)
	}
	return &CommandExtractor{command: command, exec: exec}, nil
}

// Command returns the extractor binary name.
func (c *CommandExtractor) Command() string { return c.command }

// Extract runs the extractor once for one input file.
func (c *CommandExtractor) Extract(vendor, inputPath, outputPath string) error {
	args := []string{"-v", vendor, "-i", inputPath, "-o", outputPath}
	if err := c.exec.Run(c.command, args...); err != nil {
		return fmt.Errorf("running %s on %s: %w", c.command, inputPath, err)
	}
	return nil
}
