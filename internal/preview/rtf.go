package preview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrNotRTF is returned when the input does not start with an RTF header.
var ErrNotRTF = errors.New("not an rtf document")

// destinations whose content is metadata rather than document text.
var skippedDestinations = map[string]bool{
	"fonttbl":           true,
	"colortbl":          true,
	"stylesheet":        true,
	"info":              true,
	"pict":              true,
	"header":            true,
	"headerl":           true,
	"headerr":           true,
	"footer":            true,
	"footerl":           true,
	"footerr":           true,
	"object":            true,
	"themedata":         true,
	"datastore":         true,
	"latentstyles":      true,
	"listtable":         true,
	"listoverridetable": true,
	"rsidtbl":           true,
	"generator":         true,
	"xmlnstbl":          true,
	"mmathPr":           true,
}

var wordText = map[string]string{
	"par":       "\n",
	"line":      "\n",
	"sect":      "\n",
	"page":      "\n",
	"row":       "\n",
	"tab":       "\t",
	"cell":      "\t",
	"emdash":    "—",
	"endash":    "–",
	"bullet":    "•",
	"lquote":    "‘",
	"rquote":    "’",
	"ldblquote": "“",
	"rdblquote": "”",
}

type rtfGroup struct {
	skip bool
	uc   int // fallback characters following a \u escape
}

type rtfParser struct {
	src     []byte
	pos     int
	out     strings.Builder
	stack   []rtfGroup
	cur     rtfGroup
	pending int  // fallback characters still to drop
	high    rune // high surrogate waiting for its low half
}

// ExtractRTF returns the plain text of an RTF document. Formatting, tables of
// fonts/colors/styles, pictures and document info are dropped. Hex escapes
// are decoded as Windows-1252, \u escapes as Unicode code points.
func ExtractRTF(r io.Reader) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !bytes.HasPrefix(bytes.TrimLeft(src, " \t\r\n"), []byte(`{\rtf`)) {
		return "", ErrNotRTF
	}

	p := &rtfParser{src: src, cur: rtfGroup{uc: 1}}
	if err := p.parse(); err != nil {
		return "", err
	}
	p.emit("")
	return p.out.String(), nil
}

func (p *rtfParser) parse() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++

		switch c {
		case '{':
			p.stack = append(p.stack, p.cur)
		case '}':
			if len(p.stack) == 0 {
				return fmt.Errorf("unbalanced group at offset %d", p.pos-1)
			}
			p.cur = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
		case '\\':
			p.control()
		case '\r', '\n':
		default:
			p.emitByte(c)
		}
	}
	return nil
}

func (p *rtfParser) control() {
	if p.pos >= len(p.src) {
		return
	}
	c := p.src[p.pos]
	p.pos++

	switch {
	case c == '\\' || c == '{' || c == '}':
		p.emitByte(c)
	case c == '\'':
		if p.pos+2 > len(p.src) {
			return
		}
		b, err := strconv.ParseUint(string(p.src[p.pos:p.pos+2]), 16, 8)
		p.pos += 2
		if err == nil {
			p.emitByte(byte(b))
		}
	case c == '*':
		p.cur.skip = true
	case c == '~':
		p.emit(" ")
	case c == '_':
		p.emit("-")
	case c == '\r' || c == '\n':
		p.emit("\n")
	case isLetter(c):
		p.word()
	}
}

func (p *rtfParser) word() {
	start := p.pos - 1
	for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
		p.pos++
	}
	name := string(p.src[start:p.pos])

	paramStart := p.pos
	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	param, hasParam := 0, false
	if p.pos > paramStart {
		if n, err := strconv.Atoi(string(p.src[paramStart:p.pos])); err == nil {
			param, hasParam = n, true
		}
	}
	if p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}

	switch {
	case skippedDestinations[name]:
		p.cur.skip = true
	case name == "uc" && hasParam:
		p.cur.uc = param
	case name == "u" && hasParam:
		if param < 0 {
			param += 65536
		}
		p.unicode(rune(param))
		p.pending = p.cur.uc
	default:
		if text, ok := wordText[name]; ok {
			p.emit(text)
		}
	}
}

func (p *rtfParser) emitByte(b byte) {
	if p.pending > 0 {
		p.pending--
		return
	}
	if b < 0x80 {
		p.emit(string(rune(b)))
		return
	}
	p.emit(string(charmap.Windows1252.DecodeByte(b)))
}

// unicode writes r, pairing a high surrogate with the low surrogate of the
// next \u escape. Unpaired halves become U+FFFD.
func (p *rtfParser) unicode(r rune) {
	switch {
	case r >= 0xD800 && r < 0xDC00:
		p.emit("")
		if !p.cur.skip {
			p.high = r
		}
	case r >= 0xDC00 && r < 0xE000 && p.high != 0:
		h := p.high
		p.high = 0
		p.emit(string(utf16.DecodeRune(h, r)))
	default:
		p.emit(string(r))
	}
}

func (p *rtfParser) emit(s string) {
	if p.cur.skip {
		return
	}
	if p.high != 0 {
		p.out.WriteRune(utf8.RuneError)
		p.high = 0
	}
	p.out.WriteString(s)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
