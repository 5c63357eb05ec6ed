package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"fire/internal/buildpipeline"
	"fire/internal/config"
	"fire/internal/ui"
)

// progressTitle — заголовок экрана прогресса: цель и ранг из fire.toml.
func progressTitle(s config.Settings) string {
	title := fmt.Sprintf("fire build -> %s", s.Target)
	if s.Rank != "" && s.Rank != config.RankNone {
		title += fmt.Sprintf(" (%s)", s.Rank)
	}
	return title
}

// eventBuffer sizes the event channel so a build never waits on the screen:
// every file is queued once and reports each stage at most twice.
func eventBuffer(files int) int {
	return files * (1 + 2*len(buildpipeline.Stages))
}

// buildWithProgress runs the build while the Bubble Tea screen follows its events.
// Quitting the screen cancels the build.
func buildWithProgress(ctx context.Context, out io.Writer, s config.Settings, files []string, req *buildpipeline.BuildRequest) (buildpipeline.BuildResult, error) {
	if req == nil {
		return buildpipeline.BuildResult{}, fmt.Errorf("missing build request")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan buildpipeline.Event, eventBuffer(len(files)))
	type outcome struct {
		res buildpipeline.BuildResult
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		local := *req
		local.Files = files
		local.Progress = buildpipeline.SinkFunc(func(ev buildpipeline.Event) {
			select {
			case events <- ev:
			case <-ctx.Done():
				// экран закрыт, событие некому читать
			}
		})
		res, err := buildpipeline.Build(ctx, &local)
		close(events)
		done <- outcome{res, err}
	}()

	screen := tea.NewProgram(ui.NewProgressModel(progressTitle(s), files, events),
		tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := screen.Run()
	cancel()
	o := <-done
	if uiErr != nil && o.err == nil {
		return o.res, uiErr
	}
	return o.res, o.err
}
