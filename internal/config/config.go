package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the project manifest looked up by Find.
const FileName = "fire.toml"

// Target selects how the output is handed to the game.
type Target string

const (
	TargetCommand    Target = "command"
	TargetCodeClient Target = "codeclient"
	TargetRecode     Target = "recode"
)

var targets = []Target{TargetCommand, TargetCodeClient, TargetRecode}

// Rank is the plot owner's rank; it is reported with the build, not enforced.
type Rank string

const (
	RankNone     Rank = "none"
	RankNoble    Rank = "noble"
	RankEmperor  Rank = "emperor"
	RankMythic   Rank = "mythic"
	RankOverlord Rank = "overlord"
)

var ranks = []Rank{RankNone, RankNoble, RankEmperor, RankMythic, RankOverlord}

// Settings — параметры сборки из [build] в fire.toml.
type Settings struct {
	Source  string `toml:"source"`
	Output  string `toml:"output"`
	MaxSize int    `toml:"max_size"`
	Bundle  bool   `toml:"bundle"`
	Target  Target `toml:"target"`
	Rank    Rank   `toml:"rank"`
}

type manifest struct {
	Build Settings `toml:"build"`
}

// Default mirrors an empty fire.toml.
func Default() Settings {
	return Settings{
		Source:  "fire",
		Output:  "out",
		MaxSize: 50,
		Bundle:  true,
		Target:  TargetCommand,
		Rank:    RankNone,
	}
}

// Validate checks enum values and limits.
func (s Settings) Validate() error {
	var problems []string
	if strings.TrimSpace(s.Source) == "" {
		problems = append(problems, "build.source must not be empty")
	}
	if strings.TrimSpace(s.Output) == "" {
		problems = append(problems, "build.output must not be empty")
	}
	if s.MaxSize <= 0 {
		problems = append(problems, fmt.Sprintf("build.max_size must be positive, got %d", s.MaxSize))
	}
	if !slices.Contains(targets, s.Target) {
		problems = append(problems, fmt.Sprintf("build.target %q is not one of command, codeclient, recode", s.Target))
	}
	if !slices.Contains(ranks, s.Rank) {
		problems = append(problems, fmt.Sprintf("build.rank %q is not one of none, noble, emperor, mythic, overlord", s.Rank))
	}
	if len(problems) > 0 {
		return &InvalidError{Problems: problems}
	}
	return nil
}

// EmitsKindling reports whether the target consumes raw Kindling text.
func (s Settings) EmitsKindling() bool {
	return s.Target == TargetCodeClient || s.Target == TargetRecode
}

// InvalidError lists every validation problem at once.
type InvalidError struct {
	Path     string
	Problems []string
}

func (e *InvalidError) Error() string {
	prefix := "invalid settings"
	if e.Path != "" {
		prefix = e.Path
	}
	return prefix + ": " + strings.Join(e.Problems, "; ")
}

// Load decodes path on top of Default. Unknown keys are an error.
func Load(path string) (Settings, error) {
	s := Default()
	m := manifest{Build: s}
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Settings{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := m.Build.Validate(); err != nil {
		var inv *InvalidError
		if errors.As(err, &inv) {
			inv.Path = path
		}
		return Settings{}, err
	}
	return m.Build, nil
}

// Find walks up from startDir looking for fire.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Encode renders s as a fire.toml document.
func Encode(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(manifest{Build: s}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
