package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"fire/internal/buildpipeline"
)

const statusColumn = 12

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// progressModel shows the build as a stage strip plus one row per source file.
type progressModel struct {
	title   string
	events  <-chan buildpipeline.Event
	spinner spinner.Model
	bar     progress.Model

	stage  buildpipeline.Stage
	failed bool
	rows   []fileRow
	byPath map[string]*fileRow
	width  int
	done   bool
}

type fileRow struct {
	path   string
	status buildpipeline.Status
	stage  buildpipeline.Stage
}

type eventMsg buildpipeline.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model fed by events until the channel closes.
func NewProgressModel(title string, files []string, events <-chan buildpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = activeStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]*fileRow, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = fileRow{path: f, status: buildpipeline.StatusQueued}
		m.byPath[f] = &m.rows[i]
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(buildpipeline.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// next ждёт следующее событие; закрытый канал означает конец сборки.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev buildpipeline.Event) tea.Cmd {
	if ev.Status == buildpipeline.StatusError {
		m.failed = true
	}
	if ev.File == "" {
		if ev.Stage.Order() > m.stage.Order() {
			m.stage = ev.Stage
		}
		return m.bar.SetPercent(m.percent())
	}
	row, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row.status, row.stage = ev.Status, ev.Stage
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return m.stage.Fraction()
	}
	sum := 0.0
	for _, r := range m.rows {
		if r.status.Terminal() {
			sum++
			continue
		}
		sum += r.stage.Fraction()
	}
	return sum / float64(len(m.rows))
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	prefix := m.spinner.View()
	if m.done {
		prefix = "done:"
	}
	b.WriteString(titleStyle.Render(prefix + " " + m.title))
	b.WriteString("  ")
	b.WriteString(m.stageStrip())
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusColumn-4, 20)
	for _, r := range m.rows {
		label := rowLabel(r)
		fmt.Fprintf(&b, "  %s %s\n",
			rowStyle(r.status).Render(fmt.Sprintf("%*s", statusColumn, label)),
			truncate(r.path, nameWidth))
	}
	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

// stageStrip renders "parse › register › lower › emit" with the current stage highlighted.
func (m *progressModel) stageStrip() string {
	cur := m.stage.Order()
	parts := make([]string, len(buildpipeline.Stages))
	for i, st := range buildpipeline.Stages {
		switch {
		case i == cur && m.failed:
			parts[i] = failedStyle.Render(string(st))
		case i == cur && !m.done:
			parts[i] = activeStyle.Render(st.Label())
		case i <= cur:
			parts[i] = passedStyle.Render(string(st))
		default:
			parts[i] = pendingStyle.Render(string(st))
		}
	}
	return strings.Join(parts, " › ")
}

func rowLabel(r fileRow) string {
	if r.status == buildpipeline.StatusWorking {
		return r.stage.Label()
	}
	return string(r.status)
}

func rowStyle(st buildpipeline.Status) lipgloss.Style {
	switch st {
	case buildpipeline.StatusDone:
		return passedStyle
	case buildpipeline.StatusError:
		return failedStyle
	case buildpipeline.StatusWorking:
		return activeStyle
	}
	return pendingStyle
}

func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
