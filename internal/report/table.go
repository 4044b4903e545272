package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/keyhound/keyhound/internal/types"
)

// PrintTable renders findings as a bordered table with masked secrets.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) error {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found")
		return nil
	}
	table := tablewriter.NewTable(w)
	table.Header([]string{"Type", "Location", "Match"})
	for _, f := range findings {
		if err := table.Append([]string{
			f.Type,
			fmt.Sprintf("%s:%d", f.File, f.Line),
			MaskValue(f.Match),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Findings: %d\n", len(findings))
	return nil
}
