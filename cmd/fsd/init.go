package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"fsdc/internal/ident"
	"fsdc/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new definition project",
	Long: `Initialize a project by creating a manifest (fsd.toml) and an example definition
in api/. If [path|name] is omitted, initializes the current directory. If a
non-existing name is provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	cfg := project.DefaultConfig()
	cfg.Definitions.Paths = []string{"api"}
	manifest, err := project.Encode(cfg)
	if err != nil {
		return err
	}

	name := serviceName(filepath.Base(target))
	defPath := filepath.Join(target, "api", name+".fsd")
	if err := os.MkdirAll(filepath.Dir(defPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(manifestPath, manifest, 0o644); err != nil {
		return err
	}
	if _, err := os.Stat(defPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(defPath, []byte(exampleDefinition(name)), 0o644); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created %s\n", manifestPath)
	fmt.Fprintf(out, "created %s\n", defPath)
	return nil
}

// serviceName turns a directory name into an identifier: "my-api" becomes
// "MyApi". Names that cannot be converted fall back to "ExampleApi".
func serviceName(dir string) string {
	var b strings.Builder
	upper := true
	for _, r := range dir {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	name := b.String()
	if !ident.IsValid(name) {
		return "ExampleApi"
	}
	return name
}

func exampleDefinition(name string) string {
	return `/// Example service.
service ` + name + ` {
	/// Gets a widget by ID.
	method getWidget {
		id: string;
	}:
	{
		widget: Widget;
	}

	data Widget {
		id: string;
		name: string;
	}
}

# ` + name + `

Remarks about the service go here, in markdown.
`
}
