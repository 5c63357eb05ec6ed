package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fire/internal/buildpipeline"
	"fire/internal/config"
	"fire/internal/driver"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [path]",
	Short: "Build a fire project",
	Long: `Build compiles every .fire file of a project into Kindling templates.
Settings come from fire.toml, looked up from [path] upwards; without one the
defaults are used and sources are read from [path]/fire (or [path] itself).`,
	Args: cobra.MaximumNArgs(1),
	RunE: buildExecution,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output directory (overrides build.output)")
	buildCmd.Flags().String("target", "", "delivery target: command|codeclient|recode (overrides build.target)")
	buildCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	buildCmd.Flags().Bool("no-cache", false, "do not read or write the token cache")
	buildCmd.Flags().Int("jobs", 0, "max parallel parse workers (0=auto)")
	buildCmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	outputFlag, err := flags.GetString("output")
	if err != nil {
		return err
	}
	targetFlag, err := flags.GetString("target")
	if err != nil {
		return err
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return err
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return err
	}
	diagFormat, err := flags.GetString("diag-format")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	showProgress, err := switchEnabled(flags, "ui", os.Stdout)
	if err != nil {
		return err
	}

	log := newLogger(cmd)
	start := "."
	if len(args) > 0 {
		start = args[0]
	}
	proj, err := loadProject(start)
	if err != nil {
		return err
	}
	if proj.ManifestPath != "" {
		log.Verbose("using %s", proj.ManifestPath)
	} else {
		log.Verbose("no %s found, using defaults", config.FileName)
	}

	// флаги CLI перекрывают fire.toml
	if outputFlag != "" {
		proj.Settings.Output = outputFlag
	}
	if targetFlag != "" {
		proj.Settings.Target = config.Target(targetFlag)
	}
	if err := proj.Settings.Validate(); err != nil {
		return err
	}

	root := proj.SourceDir()
	files, err := driver.ListSources(root)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%s: %w", root, driver.ErrNoSources)
	}
	displayFiles := make([]string, 0, len(files))
	for _, f := range files {
		if rel, relErr := filepath.Rel(proj.Dir, f); relErr == nil {
			f = rel
		}
		displayFiles = append(displayFiles, f)
	}
	log.Verbose("source directory %s: %d file(s)", root, len(files))

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("fire")
		if err != nil {
			log.Warn("token cache disabled: %v", err)
			cache = nil
		}
	}

	mem, err := driver.NewMemoryCache(len(files))
	if err != nil {
		return err
	}

	req := &buildpipeline.BuildRequest{
		CompileRequest: buildpipeline.CompileRequest{
			Root:           root,
			Settings:       proj.Settings,
			MaxDiagnostics: maxDiag,
			Jobs:           jobs,
			Cache:          cache,
			Memory:         mem,
		},
		OutputDir: proj.OutputDir(),
	}

	var res buildpipeline.BuildResult
	if showProgress {
		// прогресс по путям относительно проекта
		res, err = buildWithProgress(cmd.Context(), os.Stdout, proj.Settings, displayFiles, req)
	} else {
		res, err = buildpipeline.Build(cmd.Context(), req)
	}

	if res.Compile != nil {
		if printErr := printDiagnostics(cmd, res.Compile.Bag, res.Compile.FileSet, diagFormat); printErr != nil {
			return printErr
		}
		cached := 0
		for _, f := range res.Compile.Files {
			if f.Cached {
				cached++
			}
		}
		log.Verbose("%d file(s) parsed, %d from cache", len(res.Compile.Files), cached)
		log.Verbose("%d definition(s) registered", len(res.Compile.Program.Definitions()))
		log.Verbose("%d header(s) lowered", len(res.Compile.Headers))
	}
	if showTimings && res.Compile != nil {
		printStageTimings(os.Stderr, res.Timings, res.Compile.Timings)
	}
	if err != nil {
		if errors.Is(err, buildpipeline.ErrDiagnostics) {
			return fmt.Errorf("build failed: %w", err)
		}
		return err
	}

	for _, p := range res.OutputPaths {
		log.Verbose("wrote %s", p)
	}
	log.Success("%d header(s) written to %s (target %s, rank %s)",
		len(res.Compile.Headers), req.OutputDir, proj.Settings.Target, proj.Settings.Rank)
	if proj.Settings.EmitsKindling() {
		log.Info("%s reads the Kindling text as is", proj.Settings.Target)
	}
	return nil
}
