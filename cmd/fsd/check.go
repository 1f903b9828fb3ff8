package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fsdc/internal/diagfmt"
	"fsdc/internal/driver"
	"fsdc/internal/logger"
	"fsdc/internal/project"
	"fsdc/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.fsd|directory...]",
	Short: "Check service definitions and report every problem",
	Long: `Check parses every definition file and reports remarks, syntax and validation errors.
Without arguments the paths listed in fsd.toml are checked, or the current directory
when there is no manifest. The exit status is 1 when any definition has errors.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|short|json|sarif); defaults to fsd.toml or pretty")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	checkCmd.Flags().Bool("drop-cache", false, "clear the disk cache before checking")
	checkCmd.Flags().Bool("codes", false, "show diagnostic codes")
	checkCmd.Flags().Int("context", 0, "source lines shown above each error in pretty output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().String("ui", "off", "show live progress (auto|on|off)")
}

// checkSettings is the merge of fsd.toml and the command line.
type checkSettings struct {
	paths     []string
	baseDir   string
	format    string
	max       int
	cache     bool
	cacheDir  string
	dropCache bool
	jobs      int
	codes     bool
	context   int
	fullPath  bool
	ui        uiMode
}

func loadCheckSettings(cmd *cobra.Command, args []string) (checkSettings, error) {
	cfg := project.DefaultConfig()
	var s checkSettings

	wd, err := os.Getwd()
	if err != nil {
		return s, err
	}
	s.baseDir = wd

	manifest, ok, err := project.Load(wd)
	if err != nil {
		return s, err
	}
	if ok {
		cfg = manifest.Config
		s.cacheDir = manifest.CacheDir()
		logger.Debug("using manifest", "path", manifest.Path)
	}

	switch {
	case len(args) > 0:
		s.paths = args
	case ok:
		s.paths = manifest.DefinitionPaths()
	default:
		s.paths = []string{"."}
	}

	flags := cmd.Flags()
	s.format = cfg.Diagnostics.Format
	if flags.Changed("format") {
		if s.format, err = flags.GetString("format"); err != nil {
			return s, err
		}
	}
	s.max = cfg.Diagnostics.Max
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		if s.max, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
			return s, err
		}
	}
	s.cache = cfg.Cache.Enabled
	if flags.Changed("cache") {
		if s.cache, err = flags.GetBool("cache"); err != nil {
			return s, err
		}
	}
	if s.dropCache, err = flags.GetBool("drop-cache"); err != nil {
		return s, err
	}
	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return s, err
	}
	if s.codes, err = flags.GetBool("codes"); err != nil {
		return s, err
	}
	if s.context, err = flags.GetInt("context"); err != nil {
		return s, err
	}
	if s.fullPath, err = flags.GetBool("fullpath"); err != nil {
		return s, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, err
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}

	switch s.format {
	case "pretty", "short", "json", "sarif":
	default:
		return s, fmt.Errorf("unknown format %q (expected pretty|short|json|sarif)", s.format)
	}
	return s, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadCheckSettings(cmd, args)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Jobs:           s.jobs,
		MaxDiagnostics: s.max,
		PathMode:       "relative",
		BaseDir:        s.baseDir,
	}
	if s.fullPath {
		opts.PathMode = "absolute"
	}
	if s.cache || s.dropCache {
		cache, err := driver.OpenDiskCache(s.cacheDir, "fsdc")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if s.dropCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to drop cache: %w", err)
			}
		}
		if s.cache {
			opts.Cache = cache
		}
	}

	out := cmd.OutOrStdout()
	var res *driver.CheckResult
	if s.format == "pretty" && shouldUseTUI(s.ui) {
		files, err := driver.ExpandPaths(s.paths)
		if err != nil {
			return err
		}
		res, err = runCheckWithUI(cmd.Context(), "checking", files, s.paths, opts)
		if err != nil {
			return err
		}
	} else {
		res, err = driver.CheckFiles(cmd.Context(), s.paths, opts)
		if err != nil {
			return err
		}
	}

	if err := renderCheck(cmd, out, res, s); err != nil {
		return err
	}
	if res.Failed() {
		return errDefinitions
	}
	return nil
}

func renderCheck(cmd *cobra.Command, out io.Writer, res *driver.CheckResult, s checkSettings) error {
	files := fileDiagnostics(res.Files)
	switch s.format {
	case "json":
		return diagfmt.JSON(out, files, diagfmt.JSONOpts{Indent: true})
	case "sarif":
		return diagfmt.Sarif(out, files, diagfmt.SarifRunMeta{
			ToolName:       "fsd",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	case "short":
		if err := diagfmt.Short(out, files, s.codes); err != nil {
			return err
		}
	default:
		color, err := useColor(cmd, out)
		if err != nil {
			return err
		}
		if err := diagfmt.Pretty(out, files, diagfmt.PrettyOpts{Color: color, Context: s.context, ShowCodes: s.codes}); err != nil {
			return err
		}
	}
	return printCheckSummary(cmd, res)
}

func printCheckSummary(cmd *cobra.Command, res *driver.CheckResult) error {
	flags := cmd.Root().PersistentFlags()
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return err
	}
	errOut := cmd.ErrOrStderr()
	if timings {
		fmt.Fprint(errOut, res.Timing().Summary())
	}
	if quiet {
		return nil
	}
	failed, cached := 0, 0
	for _, f := range res.Files {
		if f.Failed() {
			failed++
		}
		if f.Cached {
			cached++
		}
	}
	summary := fmt.Sprintf("checked %d %s: %d with errors, %d %s",
		len(res.Files), plural(len(res.Files), "file"), failed, res.ErrorCount(), plural(res.ErrorCount(), "error"))
	if cached > 0 {
		summary += fmt.Sprintf(" (%d cached)", cached)
	}
	fmt.Fprintln(errOut, summary)
	return nil
}

func fileDiagnostics(results []*driver.FileResult) []diagfmt.FileDiagnostics {
	out := make([]diagfmt.FileDiagnostics, len(results))
	for i, r := range results {
		out[i] = diagfmt.FileDiagnostics{Name: r.Name, File: r.File, Errors: r.Errors}
	}
	return out
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
