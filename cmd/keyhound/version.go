package keyhound

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the keyhound version",
		Run: func(_ *cobra.Command, _ []string) {
			v := version
			if info, ok := debug.ReadBuildInfo(); ok && v == "" {
				v = info.Main.Version
			}
			fmt.Fprintf(os.Stdout, "keyhound v%s\n", v)
		},
	}
	rootCmd.AddCommand(cmd)
}
