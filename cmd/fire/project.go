package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fire/internal/config"
)

// project is a resolved build location: the directory holding fire.toml (or
// the argument directory when there is none) plus the effective settings.
type project struct {
	Dir          string
	ManifestPath string
	Settings     config.Settings
}

// SourceDir is where .fire files are read from.
// Без манифеста каталог `fire/` не обязателен: берём сам каталог.
func (p project) SourceDir() string {
	dir := filepath.Join(p.Dir, p.Settings.Source)
	if p.ManifestPath == "" {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			return p.Dir
		}
	}
	return dir
}

// OutputDir resolves settings.Output against the project directory.
func (p project) OutputDir() string {
	if filepath.IsAbs(p.Settings.Output) {
		return p.Settings.Output
	}
	return filepath.Join(p.Dir, p.Settings.Output)
}

func loadProject(start string) (project, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return project{}, err
	}
	st, err := os.Stat(abs)
	if err != nil {
		return project{}, fmt.Errorf("failed to stat %q: %w", start, err)
	}
	if !st.IsDir() {
		return project{}, fmt.Errorf("%q is not a directory", start)
	}
	manifestPath, ok, err := config.Find(abs)
	if err != nil {
		return project{}, err
	}
	if !ok {
		return project{Dir: abs, Settings: config.Default()}, nil
	}
	settings, err := config.Load(manifestPath)
	if err != nil {
		return project{}, err
	}
	return project{Dir: filepath.Dir(manifestPath), ManifestPath: manifestPath, Settings: settings}, nil
}
