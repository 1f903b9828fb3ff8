package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"fsdc/internal/definition"
	"fsdc/internal/diagfmt"
	"fsdc/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.fsd>",
	Short: "Parse a definition and print its model",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format %q (expected tree|json)", format)
	}

	res, err := driver.ParseFile(cmd.Context(), args[0], driver.Options{})
	if err != nil {
		return err
	}
	if res.Failed() {
		color, err := useColor(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		files := []diagfmt.FileDiagnostics{{Name: res.Name, File: res.File, Errors: res.Errors}}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), files, diagfmt.PrettyOpts{Color: color}); err != nil {
			return err
		}
		return errDefinitions
	}

	if format == "json" {
		return diagfmt.Model(cmd.OutOrStdout(), res.Service)
	}
	printTree(cmd.OutOrStdout(), res.Service)
	return nil
}

// printTree prints one line per element, indented by nesting.
func printTree(w io.Writer, svc *definition.ServiceInfo) {
	line := func(depth int, format string, args ...any) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
	}
	line(0, "service %s %s", svc.Name(), svc.Position())
	for _, member := range svc.Members() {
		line(1, "%s %s %s", member.Kind().Keyword(), member.Name(), member.Position())
		switch m := member.(type) {
		case *definition.ServiceMethodInfo:
			for _, f := range m.RequestFields() {
				line(2, "request %s: %s", f.Name(), f.TypeName())
			}
			for _, f := range m.ResponseFields() {
				line(2, "response %s: %s", f.Name(), f.TypeName())
			}
		case *definition.ServiceDtoInfo:
			for _, f := range m.Fields() {
				line(2, "%s: %s", f.Name(), f.TypeName())
			}
		case *definition.ServiceEnumInfo:
			for _, v := range m.Values() {
				line(2, "%s", v.Name())
			}
		case *definition.ServiceErrorSetInfo:
			for _, e := range m.Errors() {
				line(2, "%s", e.Name())
			}
		}
	}
}
