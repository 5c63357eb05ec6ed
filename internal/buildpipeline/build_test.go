package buildpipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire/internal/buildpipeline"
	"fire/internal/config"
)

type recordSink struct {
	events []buildpipeline.Event
}

func (s *recordSink) OnEvent(ev buildpipeline.Event) { s.events = append(s.events, ev) }

func (s *recordSink) stages() []string {
	var out []string
	for _, ev := range s.events {
		if ev.File != "" {
			continue
		}
		out = append(out, string(ev.Stage)+":"+string(ev.Status))
	}
	return out
}

func sourceDir(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return root
}

var sample = map[string]string{
	"main.fire": "@event fn Join() { print('hi'); }\n",
	"util.fire": "fn twice(x: Int): Int { return x + x; }\n",
}

func TestBuildBundle(t *testing.T) {
	root := sourceDir(t, sample)
	out := filepath.Join(t.TempDir(), "out")
	sink := &recordSink{}
	res, err := buildpipeline.Build(context.Background(), &buildpipeline.BuildRequest{
		CompileRequest: buildpipeline.CompileRequest{
			Root:           root,
			Settings:       config.Default(),
			MaxDiagnostics: 10,
			Progress:       sink,
			Files:          []string{"main.fire", "util.fire"},
		},
		OutputDir: out,
	})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(out, buildpipeline.BundleName)}, res.OutputPaths)

	data, err := os.ReadFile(res.OutputPaths[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], `( player-event "Join"`), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `( def "util::twice"`), lines[1])

	assert.Equal(t, []string{
		"parse:working",
		"register:working",
		"lower:working",
		"emit:working",
		"emit:done",
	}, sink.stages())
	assert.True(t, res.Timings.Has(buildpipeline.StageParse))
	assert.True(t, res.Timings.Has(buildpipeline.StageEmit))

	queued := 0
	for _, ev := range sink.events {
		if ev.Status == buildpipeline.StatusQueued {
			queued++
		}
	}
	assert.Equal(t, 2, queued)
}

func TestBuildSeparateFiles(t *testing.T) {
	root := sourceDir(t, sample)
	out := t.TempDir()
	settings := config.Default()
	settings.Bundle = false
	res, err := buildpipeline.Build(context.Background(), &buildpipeline.BuildRequest{
		CompileRequest: buildpipeline.CompileRequest{Root: root, Settings: settings, MaxDiagnostics: 10},
		OutputDir:      out,
	})
	require.NoError(t, err)
	var names []string
	for _, p := range res.OutputPaths {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"000-Join.kindling", "001-util.twice.kindling"}, names)
}

func TestBuildStopsOnDiagnostics(t *testing.T) {
	root := sourceDir(t, map[string]string{"main.fire": "fn f() { nope(); }\n"})
	out := filepath.Join(t.TempDir(), "out")
	sink := &recordSink{}
	res, err := buildpipeline.Build(context.Background(), &buildpipeline.BuildRequest{
		CompileRequest: buildpipeline.CompileRequest{Root: root, Settings: config.Default(), MaxDiagnostics: 10, Progress: sink},
		OutputDir:      out,
	})
	require.True(t, errors.Is(err, buildpipeline.ErrDiagnostics))
	require.NotNil(t, res.Compile)
	assert.True(t, res.Compile.Bag.HasErrors())
	assert.Contains(t, sink.stages(), "lower:error")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCompileAllowsDiagnostics(t *testing.T) {
	root := sourceDir(t, map[string]string{"main.fire": "fn f() { nope(); }\nfn g() {}\n"})
	res, err := buildpipeline.Compile(context.Background(), &buildpipeline.CompileRequest{
		Root:                  root,
		Settings:              config.Default(),
		MaxDiagnostics:        10,
		AllowDiagnosticsError: true,
	})
	require.NoError(t, err)
	require.Len(t, res.Driver.Headers, 1)
}

func TestCompileRequiresRoot(t *testing.T) {
	_, err := buildpipeline.Compile(context.Background(), &buildpipeline.CompileRequest{})
	require.Error(t, err)
	_, err = buildpipeline.Build(context.Background(), nil)
	require.Error(t, err)
}

func TestChannelSink(t *testing.T) {
	ch := make(chan buildpipeline.Event, 1)
	buildpipeline.ChannelSink{Ch: ch}.OnEvent(buildpipeline.Event{Stage: buildpipeline.StageEmit})
	assert.Equal(t, buildpipeline.StageEmit, (<-ch).Stage)
	// nil channel is a no-op
	buildpipeline.ChannelSink{}.OnEvent(buildpipeline.Event{})
}

func TestTimingsSum(t *testing.T) {
	var tm buildpipeline.Timings
	tm.Set(buildpipeline.StageParse, 2)
	tm.Set(buildpipeline.StageLower, 3)
	assert.Equal(t, int64(5), int64(tm.Sum(buildpipeline.StageParse, buildpipeline.StageLower, buildpipeline.StageEmit)))
	assert.False(t, tm.Has(buildpipeline.StageEmit))

	tm.Add(buildpipeline.StageParse, 4)
	assert.Equal(t, int64(6), int64(tm.Duration(buildpipeline.StageParse)))
	tm.Set(buildpipeline.Stage("link"), 1)
	assert.False(t, tm.Has(buildpipeline.Stage("link")))
}

func TestStageOrder(t *testing.T) {
	assert.Equal(t, 0, buildpipeline.StageParse.Order())
	assert.Equal(t, 3, buildpipeline.StageEmit.Order())
	assert.Equal(t, -1, buildpipeline.Stage("").Order())
	assert.Equal(t, "lowering", buildpipeline.StageLower.Label())
	assert.InDelta(t, 0.8, buildpipeline.StageEmit.Fraction(), 1e-9)
	assert.True(t, buildpipeline.StatusError.Terminal())
	assert.False(t, buildpipeline.StatusWorking.Terminal())
}

func TestSinkFunc(t *testing.T) {
	var got []buildpipeline.Stage
	sink := buildpipeline.SinkFunc(func(ev buildpipeline.Event) { got = append(got, ev.Stage) })
	sink.OnEvent(buildpipeline.Event{Stage: buildpipeline.StageLower})
	buildpipeline.SinkFunc(nil).OnEvent(buildpipeline.Event{})
	assert.Equal(t, []buildpipeline.Stage{buildpipeline.StageLower}, got)
}
