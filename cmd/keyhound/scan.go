package keyhound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/keyhound/keyhound/internal/audit"
	"github.com/keyhound/keyhound/internal/config"
	"github.com/keyhound/keyhound/internal/engine"
	"github.com/keyhound/keyhound/internal/gitrepo"
	"github.com/keyhound/keyhound/internal/patterns"
	"github.com/keyhound/keyhound/internal/report"
	"github.com/keyhound/keyhound/internal/types"
	"github.com/keyhound/keyhound/internal/update"
)

var (
	flagDir        string
	flagRepo       string
	flagPatterns   string
	flagIgnore     string
	flagJSON       bool
	flagTable      bool
	flagSARIF      bool
	flagOutputFile string
	flagEntropy    float64
	flagThreads    int
	flagMaxBytes   int64
	flagExitZero   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory or repository for secrets",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagDir, "dir", "", "local directory to scan")
	cmd.Flags().StringVar(&flagRepo, "repo", "", "repository URL to clone and scan")
	cmd.Flags().StringVar(&flagPatterns, "patterns", "", "YAML file with custom patterns")
	cmd.Flags().StringVar(&flagIgnore, "ignore-files", "", "comma-separated filename fragments to skip")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit findings as JSON")
	cmd.Flags().BoolVar(&flagTable, "table", false, "render findings as a table")
	cmd.Flags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	cmd.Flags().StringVar(&flagOutputFile, "output-file", "", "write results to this file instead of stdout")
	cmd.Flags().Float64Var(&flagEntropy, "entropy-threshold", 0, fmt.Sprintf("minimum entropy for generic matches (default %.1f)", config.DefaultEntropyThreshold))
	cmd.Flags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	cmd.Flags().BoolVar(&flagExitZero, "exit-zero", false, "exit 0 even when findings are reported")
}

func runScan(cmd *cobra.Command, _ []string) error {
	if (flagDir == "") == (flagRepo == "") {
		return errors.New("exactly one of --dir or --repo is required")
	}

	root := flagDir
	if flagRepo != "" {
		dir, cleanup, err := gitrepo.Clone(cmd.Context(), flagRepo)
		if err != nil {
			return fmt.Errorf("repository fetch failed: %w", err)
		}
		defer cleanup()
		root = dir
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	cfg := buildScanConfig(abs, cmd.Flags().Changed("entropy-threshold"))

	if !flagJSON && !flagSARIF && !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'keyhound update' to upgrade\n", latest)
		}
	}

	res, err := engine.Scan(cmd.Context(), abs, cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if err := renderResults(res); err != nil {
		return err
	}

	journal := audit.New(abs)
	if flagRepo != "" {
		// the clone is removed after the run; keep its record durable
		journal = audit.NewGlobal()
	}
	rec := audit.Record(abs, res.Findings, res.FilesScanned, res.Duration)
	if err := journal.Append(rec); err != nil {
		log.Warn().Err(err).Msg("audit record not written")
	}

	if len(res.Findings) > 0 && !flagExitZero {
		exitCode = 1
	}
	return nil
}

// buildScanConfig layers CLI flags over local and global config files.
// Rendering flags (json, no_color, output_file) pick up config file
// values the same way. entropySet distinguishes an explicit
// --entropy-threshold 0 from the flag being absent.
func buildScanConfig(root string, entropySet bool) config.ScanConfig {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}

	threshold := config.PickFloat(flagEntropy, lcfg.EntropyThreshold, gcfg.EntropyThreshold)
	if entropySet {
		threshold = flagEntropy
	} else if threshold == 0 {
		threshold = config.DefaultEntropyThreshold
	}
	patternFile := config.PickString(flagPatterns, lcfg.Patterns, gcfg.Patterns)
	ignoreList := config.PickString(flagIgnore, lcfg.Ignore, gcfg.Ignore)

	flagJSON = config.PickBool(flagJSON, lcfg.JSON, gcfg.JSON)
	flagNoColor = config.PickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	flagOutputFile = config.PickString(flagOutputFile, lcfg.OutputFile, gcfg.OutputFile)

	return config.ScanConfig{
		Patterns:         patterns.Build(patternFile),
		IgnoreFragments:  config.ParseIgnoreList(ignoreList),
		EntropyThreshold: threshold,
		MaxBytes:         config.PickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:          config.PickInt(flagThreads, lcfg.Threads, gcfg.Threads),
	}
}

func renderResults(res engine.Result) error {
	findings := res.Findings
	if findings == nil {
		findings = []types.Finding{}
	}

	switch {
	case flagSARIF:
		render := func(w io.Writer, fs []types.Finding) error {
			return report.WriteSARIFVersion(w, fs, version)
		}
		if flagOutputFile != "" {
			return report.WriteFile(flagOutputFile, findings, render, os.Stdout)
		}
		return render(os.Stdout, findings)
	case flagJSON:
		if flagOutputFile != "" {
			return report.WriteFile(flagOutputFile, findings, report.WriteJSON, os.Stdout)
		}
		return report.WriteJSON(os.Stdout, findings)
	case flagTable:
		return report.PrintTable(os.Stdout, findings, report.PrintOptions{NoColor: flagNoColor})
	default:
		report.PrintText(os.Stderr, findings, report.PrintOptions{
			NoColor:      flagNoColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
		return nil
	}
}
