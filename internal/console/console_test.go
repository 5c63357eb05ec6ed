package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "default",
			opts: Options{},
			want: "info: a\ndone: b\nwarning: c\nerror: d\n",
		},
		{
			name: "quiet",
			opts: Options{Quiet: true},
			want: "warning: c\nerror: d\n",
		},
		{
			name: "verbose",
			opts: Options{Verbose: true},
			want: "info: a\ndone: b\nwarning: c\nerror: d\n  > e 1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.opts)
			l.Info("a")
			l.Success("b")
			l.Warn("c")
			l.Error("d")
			l.Verbose("e %d", 1)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{Color: true}).Error("boom")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "boom")
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Info("x")
	l.Verbose("x")
	assert.False(t, l.IsVerbose())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		tty     bool
		enabled bool
	}{
		{"", ModeAuto, true, true},
		{"auto", ModeAuto, false, false},
		{"ON", ModeOn, false, true},
		{" off ", ModeOff, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMode("ui", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
			assert.Equal(t, tt.enabled, m.Enabled(tt.tty))
		})
	}

	_, err := ParseMode("color", "sometimes")
	require.EqualError(t, err, `invalid --color value "sometimes" (expected auto|on|off)`)
}
