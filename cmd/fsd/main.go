package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fsdc/internal/logger"
	"fsdc/internal/version"
)

// errDefinitions is returned by commands whose input had definition errors.
// The diagnostics are already printed, so main only sets the exit status.
var errDefinitions = errors.New("definitions have errors")

var rootCmd = &cobra.Command{
	Use:           "fsd",
	Short:         "FSD service definition checker and formatter",
	Long:          `fsd parses service definitions written in FSD, reports every problem found and renders canonical text`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if err := setupProfiling(cmd); err != nil {
			return err
		}
		return setupTracing(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		runCleanups(nil)
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file (0 = all)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error); defaults to $"+logger.EnvLevel)
	rootCmd.PersistentFlags().String("log-file", "", "write logs to a file instead of stderr")
	rootCmd.PersistentFlags().String("trace", "", "trace output path (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage mode (stream|ring|both); ring keeps recent events and writes them when the command fails")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept in ring mode")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to the file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to the file")
}

// main runs the root command. Definition errors exit with status 1 without
// further output; other failures are printed first.
func main() {
	err := rootCmd.Execute()
	runCleanups(err)
	if err == nil {
		return
	}
	if !errors.Is(err, errDefinitions) {
		fmt.Fprintf(os.Stderr, "fsd: %v\n", err)
	}
	os.Exit(1)
}

// cleanups run in reverse order once the command returns; they see the
// command's error.
var cleanups []func(cmdErr error)

func addCleanup(f func(cmdErr error)) {
	cleanups = append(cleanups, f)
}

func runCleanups(cmdErr error) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i](cmdErr)
	}
	cleanups = nil
}

func setupLogging(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	level, err := flags.GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	file, err := flags.GetString("log-file")
	if err != nil {
		return fmt.Errorf("failed to get log-file flag: %w", err)
	}
	closer, err := logger.Configure(level, file)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	addCleanup(func(error) { _ = closer.Close() })
	return nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color for output written to w.
func useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto", "":
		return os.Getenv("NO_COLOR") == "" && isTerminal(w), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}
