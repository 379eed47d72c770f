// Package ui renders command outcomes for the terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	success = color.New(color.FgGreen).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	failed  = color.New(color.FgRed).SprintFunc()
)

// Color modes accepted by Configure.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// CheckMode rejects anything but auto, always and never. The empty string
// means auto.
func CheckMode(mode string) error {
	switch mode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
}

// Configure sets global colour output. auto enables colour only when stdout
// is a terminal.
func Configure(mode string) error {
	if err := CheckMode(mode); err != nil {
		return err
	}
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	default:
		fd := os.Stdout.Fd()
		color.NoColor = !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	}
	return nil
}

// Printer writes user-facing results. Command output goes to Out, failures
// to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter prints to the process stdout and stderr.
func NewPrinter() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Success prints msg to Out in green.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.Out, success(msg))
}

// Info prints to Out. It is used for expected conditions that do not fail
// the process, such as an already initialized repository.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Out, info(msg))
}

// Error prints err to Err with a red "Error:" prefix.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.Err, failed("Error:"), err)
}
