package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire/internal/buildpipeline"
)

func TestProgressModelTracksFiles(t *testing.T) {
	events := make(chan buildpipeline.Event)
	m, ok := NewProgressModel("fire build", []string{"fire/main.fire", "fire/util.fire"}, events).(*progressModel)
	require.True(t, ok)

	m.Update(eventMsg{Stage: buildpipeline.StageLower, Status: buildpipeline.StatusWorking})
	// стадия не откатывается назад
	m.Update(eventMsg{Stage: buildpipeline.StageParse, Status: buildpipeline.StatusWorking})
	m.Update(eventMsg{File: "fire/main.fire", Stage: buildpipeline.StageLower, Status: buildpipeline.StatusWorking})
	m.Update(eventMsg{File: "fire/util.fire", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusDone})
	m.Update(eventMsg{File: "other.fire", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusDone})

	assert.Equal(t, buildpipeline.StageLower, m.stage)
	assert.Equal(t, "lowering", rowLabel(m.rows[0]))
	assert.Equal(t, "done", rowLabel(m.rows[1]))
	assert.InDelta(t, (0.6+1)/2, m.percent(), 1e-9)

	view := m.View()
	assert.Contains(t, view, "fire build")
	assert.Contains(t, view, "lowering")
	assert.Contains(t, view, "fire/main.fire")
	assert.False(t, m.failed)

	m.Update(doneMsg{})
	assert.True(t, m.done)
	assert.Contains(t, m.View(), "done: fire build")
}

func TestProgressModelMarksFailure(t *testing.T) {
	m := NewProgressModel("b", []string{"a.fire"}, nil).(*progressModel)
	m.Update(eventMsg{File: "a.fire", Stage: buildpipeline.StageLower, Status: buildpipeline.StatusError})
	assert.True(t, m.failed)
	assert.Equal(t, "error", rowLabel(m.rows[0]))
	assert.InDelta(t, 1.0, m.percent(), 1e-9)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghijklmnop", 10, "abcdefg..."},
		{"abcdef", 2, "ab"},
		{"abcdef", 0, "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.width))
		})
	}
}

func TestEmptyModelView(t *testing.T) {
	m := NewProgressModel("x", nil, nil)
	assert.Equal(t, "", m.View())
}
