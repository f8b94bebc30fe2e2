// Package output renders the client's terminal surface: alert banners,
// per-field validation messages and plain informational lines.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
)

// ResolveColors decides whether colored output should be used, honoring
// the NO_COLOR convention and dumb terminals.
func ResolveColors(enabled bool) bool {
	if !enabled {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// Printer is the screens' alert region. Every screen owns its messages;
// nothing bubbles past it.
type Printer struct {
	out       io.Writer
	useColors bool
}

func NewPrinter(useColors bool) *Printer {
	return &Printer{out: os.Stdout, useColors: useColors}
}

// NewPrinterWithWriter is used by tests to capture output.
func NewPrinterWithWriter(w io.Writer, useColors bool) *Printer {
	return &Printer{out: w, useColors: useColors}
}

// Success renders a success alert.
func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
	}
}

// Error renders an error alert.
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.out, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[ERROR] "+format+"\n", args...)
	}
}

// Info renders a neutral line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// FieldErrors renders one line per invalid field, in stable order.
func (p *Printer) FieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f, msg := range errs {
		if msg == "" {
			continue
		}
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		if p.useColors {
			color.New(color.FgRed).Fprintf(p.out, "  %s: %s\n", f, errs[f])
		} else {
			fmt.Fprintf(p.out, "  %s: %s\n", f, errs[f])
		}
	}
}
