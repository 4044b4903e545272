package report

import (
	"fmt"
	"io"
	"time"

	"github.com/keyhound/keyhound/internal/types"
)

// PrintOptions controls the human-readable renderers.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// PrintText writes one block per finding, in scan order, followed by a
// summary footer.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found")
	}
	for _, f := range findings {
		name := f.Type
		if !opts.NoColor {
			name = "\x1b[31m" + name + "\x1b[0m"
		}
		fmt.Fprintf(w, "[%s] %s:%d\n", name, f.File, f.Line)
		fmt.Fprintf(w, "  match:   %s\n", f.Match)
		fmt.Fprintf(w, "  context: %s\n", f.Context)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d\n", len(findings))
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// MaskValue shortens a secret for display so reports do not re-leak what
// they found.
func MaskValue(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
