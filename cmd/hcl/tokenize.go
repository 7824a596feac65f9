package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bcpeinhardt/hcl/internal/diagfmt"
	"github.com/bcpeinhardt/hcl/internal/driver"
	"github.com/bcpeinhardt/hcl/internal/observ"
	"github.com/bcpeinhardt/hcl/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.hcl...",
	Short: "Tokenize HCL configuration files",
	Long:  `Tokenize breaks down HCL-style configuration files into their constituent tokens`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse token streams for unchanged files")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for multiple files (0 = GOMAXPROCS)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	// hcl.toml задаёт дефолты, явные флаги важнее
	cfg, haveCfg, err := loadToolConfig("")
	if err != nil {
		return err
	}
	if haveCfg {
		if format == "" {
			format = cfg.Output.Format
		}
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && cfg.Output.MaxDiagnostics > 0 {
			maxDiagnostics = cfg.Output.MaxDiagnostics
		}
		if !cmd.Flags().Changed("cache") {
			useCache = cfg.Cache.Enabled
		}
	}
	if format == "" {
		format = "pretty"
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts := driver.ScanOptions{
		MaxDiagnostics: maxDiagnostics,
		Interner:       source.NewInterner(),
	}
	if useCache {
		cache, err := openCache(cfg)
		if err != nil {
			return err
		}
		opts.Cache = cache
	}

	timer := observ.NewTimer()
	phase := timer.Begin("tokenize")
	results := scanArgs(args, opts, jobs)
	timer.End(phase, fmt.Sprintf("%d file(s)", len(args)))

	var failed bool
	for _, fr := range results {
		if fr.Err != nil {
			failed = true
			var scanErr *driver.ScanError
			if errors.As(fr.Err, &scanErr) && fr.Result != nil {
				printDiagnostics(cmd, fr.Result)
				continue
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", fr.Path, fr.Err)
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s\n", fr.Path)
		}
		if err := printTokens(cmd, fr.Result, format); err != nil {
			return err
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if failed {
		return errors.New("tokenization failed")
	}
	return nil
}

func scanArgs(args []string, opts driver.ScanOptions, jobs int) []driver.FileScan {
	if len(args) == 1 {
		res, err := driver.ScanFile(args[0], opts)
		return []driver.FileScan{{Path: args[0], Result: res, Err: err}}
	}
	return driver.ScanFiles(args, opts, jobs)
}

func openCache(cfg *toolConfig) (*driver.TokenCache, error) {
	if cfg != nil && cfg.Cache.Dir != "" {
		return driver.NewTokenCache(cfg.Cache.Dir), nil
	}
	return driver.OpenTokenCache("hcl")
}

func printTokens(cmd *cobra.Command, result *driver.ScanResult, format string) error {
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
}

func printDiagnostics(cmd *cobra.Command, result *driver.ScanResult) {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	})
}
