package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fire/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new fire project",
	Long: `Initialize a new fire project by creating a project manifest (fire.toml)
and a starter event (fire/main.fire). If [path] is omitted, initializes the
current directory. A missing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	created, err := initProject(target)
	if err != nil {
		return err
	}
	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	printInitSummary(cmd.OutOrStdout(), rel, created)
	return nil
}

// initProject writes fire.toml and, unless it already exists, fire/main.fire.
// It refuses to touch a directory that already has a manifest.
func initProject(target string) (createdMain bool, err error) {
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return false, fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return false, fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, config.FileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return false, fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	settings := config.Default()
	manifest, err := config.Encode(settings)
	if err != nil {
		return false, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, manifest, 0o600); err != nil {
		return false, fmt.Errorf("failed to write manifest: %w", err)
	}

	srcDir := filepath.Join(target, settings.Source)
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", srcDir, err)
	}
	mainPath := filepath.Join(srcDir, "main.fire")
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainFire), 0o600); err != nil {
			return false, fmt.Errorf("failed to write main.fire: %w", err)
		}
		createdMain = true
	}
	return createdMain, nil
}

func printInitSummary(out io.Writer, dir string, createdMain bool) {
	fmt.Fprintf(out, "Initialized fire project in %s\n", dir)
	fmt.Fprintf(out, "  - %s\n", config.FileName)
	if createdMain {
		fmt.Fprintf(out, "  - fire/main.fire\n")
	} else {
		fmt.Fprintf(out, "  - fire/main.fire (existing)\n")
	}
}

const defaultMainFire = `// Runs when a player joins the plot.
@event
fn Join() {
    print('Welcome!');
}
`
