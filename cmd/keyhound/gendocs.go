package keyhound

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keyhound/keyhound/internal/patterns"
)

// gendocs regenerates the pattern table in README.md between the markers
// <!-- BEGIN:PATTERNS --> and <!-- END:PATTERNS -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate the README pattern table",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:PATTERNS -->")
			end := []byte("<!-- END:PATTERNS -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			var out strings.Builder
			out.WriteString("\n| Pattern | Entropy gated |\n|---|---|\n")
			for _, p := range patterns.Defaults() {
				gated := ""
				if p.Entropy {
					gated = "yes"
				}
				fmt.Fprintf(&out, "| `%s` | %s |\n", p.Name, gated)
			}

			var buf bytes.Buffer
			buf.Write(b[:i+len(start)])
			buf.WriteString(out.String())
			buf.Write(b[j:])
			return os.WriteFile(path, buf.Bytes(), 0644)
		},
	}
	rootCmd.AddCommand(cmd)
}
