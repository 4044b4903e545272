package keyhound

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keyhound/keyhound/internal/patterns"
)

func init() {
	var patternFile string
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the active detection patterns",
		RunE: func(_ *cobra.Command, _ []string) error {
			reg := patterns.Build(patternFile)
			for _, r := range reg.Rules() {
				marker := " "
				if r.Entropy {
					marker = "E"
				}
				fmt.Fprintf(os.Stdout, "%s %-16s %s\n", marker, r.Name, r.Re.String())
			}
			fmt.Fprintf(os.Stdout, "\n%d patterns (E = entropy-gated)\n", reg.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&patternFile, "patterns", "", "YAML file with custom patterns")
	rootCmd.AddCommand(cmd)
}
