// Package encoding turns arbitrarily encoded uploads into UTF-8 readers.
// Cashbook CSVs commonly arrive as Windows-1252 or BOM-prefixed UTF-16
// spreadsheet exports.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

// NewUTF8Reader wraps r so its content reads as UTF-8.
//
// Detection order: BOM, valid-UTF-8 passthrough, chardet heuristics,
// Windows-1252 fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if rd, ok := bomReader(br, head); ok {
		return rd, nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	// The peek window may cut a rune in half; trust chardet if it still
	// thinks this is UTF-8.
	if cm, utf8ok := detectCharmap(head); utf8ok {
		return br, nil
	} else if cm != nil {
		return transform.NewReader(br, cm.NewDecoder()), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func bomReader(br *bufio.Reader, head []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		_, _ = br.Discard(3)
		return br, true
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), true
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), true
	}

	return nil, false
}

func detectCharmap(head []byte) (cm *charmap.Charmap, utf8ok bool) {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil, false
	}

	switch result.Charset {
	case "UTF-8":
		return nil, true
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252, false
	case "ISO-8859-15":
		return charmap.ISO8859_15, false
	}

	return nil, false
}
