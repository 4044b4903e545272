package keyhound

import (
	"fmt"
	"os"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"

	"github.com/keyhound/keyhound/internal/update"
)

func init() {
	var checkOnly bool
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update keyhound to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			if checkOnly {
				latest, newer, err := update.Check(version, false)
				if err != nil {
					return err
				}
				if newer {
					fmt.Fprintf(os.Stdout, "new version available: v%s (current v%s)\n", latest, version)
				} else {
					fmt.Fprintln(os.Stdout, "keyhound is up to date")
				}
				return nil
			}
			return selfUpdate()
		},
	}
	cmd.Flags().BoolVar(&checkOnly, "check", false, "only check, do not install")
	rootCmd.AddCommand(cmd)
}

func selfUpdate() error {
	ver, err := semver.ParseTolerant(version)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "keyhound/keyhound")
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "updated to v%s\n", latest.Version)
	return nil
}
