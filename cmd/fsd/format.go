package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"fsdc/internal/diagfmt"
	"fsdc/internal/driver"
	"fsdc/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <file.fsd> [file.fsd...]",
	Short: "Rewrite definitions in canonical form",
	Long: `Fmt parses each definition and prints it in canonical form. Ordinary comments
are not kept; summaries, attributes and remarks are.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite files in place")
	fmtCmd.Flags().BoolP("diff", "d", false, "print a line diff instead of the formatted text")
	fmtCmd.Flags().Bool("check", false, "fail when a file is not in canonical form")
	fmtCmd.Flags().String("generated-by", "", "add a DO NOT EDIT header naming the generator")
	fmtCmd.Flags().Bool("spaces", false, "indent with spaces instead of tabs")
}

func runFmt(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	write, err := flags.GetBool("write")
	if err != nil {
		return err
	}
	showDiff, err := flags.GetBool("diff")
	if err != nil {
		return err
	}
	check, err := flags.GetBool("check")
	if err != nil {
		return err
	}
	generatedBy, err := flags.GetString("generated-by")
	if err != nil {
		return err
	}
	spaces, err := flags.GetBool("spaces")
	if err != nil {
		return err
	}
	if write && (showDiff || check) {
		return fmt.Errorf("fmt: --write cannot be combined with --diff or --check")
	}

	opts := format.Options{GeneratorName: generatedBy, UseSpaces: spaces}
	out := cmd.OutOrStdout()
	failed := false
	for _, path := range args {
		res, err := driver.ParseFile(cmd.Context(), path, driver.Options{})
		if err != nil {
			return err
		}
		if res.Failed() {
			files := []diagfmt.FileDiagnostics{{Name: res.Name, File: res.File, Errors: res.Errors}}
			if err := diagfmt.Short(cmd.ErrOrStderr(), files, false); err != nil {
				return err
			}
			failed = true
			continue
		}

		formatted := format.Generate(res.Service, opts)
		changed := !bytes.Equal(formatted, res.File.Content)
		switch {
		case write:
			if changed {
				if err := writeFileKeepMode(path, formatted); err != nil {
					return err
				}
			}
		case check:
			if changed {
				fmt.Fprintln(out, path)
				failed = true
			}
		case showDiff:
			if changed {
				writeLineDiff(out, path, string(res.File.Content), string(formatted))
			}
		default:
			if _, err := out.Write(formatted); err != nil {
				return err
			}
		}
	}
	if failed {
		return errDefinitions
	}
	return nil
}

func writeFileKeepMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}

// writeLineDiff prints a whole-file line diff: "-" for removed lines,
// "+" for added ones and " " for context.
func writeLineDiff(w io.Writer, name, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	fmt.Fprintf(w, "--- %s\n+++ %s (formatted)\n", name, name)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprint(w, prefix+line)
			if !strings.HasSuffix(line, "\n") {
				fmt.Fprintln(w)
			}
		}
	}
}
