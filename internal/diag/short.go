package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"fire/internal/source"
)

// FormatShort renders one line per diagnostic:
//
//	error SYN2001 fire/main.fire:3:5 unexpected token
//
// Paths are relative to the FileSet base dir; columns are 1-based.
// Used for golden tests and `fire build --diag-format short`.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range diags {
		d := &diags[i]
		if i > 0 {
			b.WriteByte('\n')
		}
		path, line, col := "?", uint32(0), uint32(0)
		if int(d.Primary.File) < fs.Len() {
			f := fs.Get(d.Primary.File)
			start, _ := fs.Resolve(d.Primary)
			path = filepath.ToSlash(f.FormatPath("relative", fs.BaseDir()))
			line, col = start.Line, start.Col
		}
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", strings.ToLower(d.Severity.String()), d.Code.ID(), path, line, col, oneLine(d.Message))
	}
	return b.String()
}

func oneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
