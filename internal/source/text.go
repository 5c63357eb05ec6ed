package source

import (
	"bytes"
	"slices"

	"golang.org/x/text/unicode/norm"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

func removeBOM(content []byte) ([]byte, bool) {
	if rest, ok := bytes.CutPrefix(content, bom); ok {
		return rest, true
	}
	return content, false
}

// normalizeCRLF folds "\r\n" into "\n"; a lone '\r' stays.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")), true
}

// normalizeNFC: одинаковые идентификаторы должны иметь одинаковые байты,
// иначе реестр увидит два разных имени.
func normalizeNFC(content []byte) ([]byte, bool) {
	if norm.NFC.IsNormal(content) {
		return content, false
	}
	out := norm.NFC.Bytes(content)
	return out, !bytes.Equal(out, content)
}

func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return idx
		}
		idx = append(idx, u32(off+i))
		off += i + 1
	}
}

// toLineCol: the '\n' itself belongs to the line it ends.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	n, _ := slices.BinarySearch(lineIdx, off)
	var lineStart uint32
	if n > 0 {
		lineStart = lineIdx[n-1] + 1
	}
	return LineCol{Line: u32(n + 1), Col: off - lineStart + 1}
}
