package datetime

import (
	"strings"
)

// letterTokens maps Java/.NET/moment-style tokens to Go layout elements.
// Longer tokens must come before their prefixes.
var letterTokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"YYYY", "2006"},
	{"yy", "06"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"dd", "02"},
	{"DD", "02"},
	{"d", "2"},
	{"D", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSS", "000"},
	{"fff", "000"},
	{"a", "PM"},
	{"tt", "PM"},
	{"Z", "-0700"},
	{"z", "MST"},
}

var strftimeTokens = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'f': "000000",
	'z': "-0700",
	'Z': "MST",
	'j': "002",
	'%': "%",
}

type dialect int

const (
	goLayout dialect = iota
	strftime
	letters
)

// dialectOf picks the pattern language. Quoted literals are ignored so that
// "'Q1' yyyy" stays a letter pattern.
func dialectOf(pattern string) dialect {
	bare := stripQuoted(pattern)
	switch {
	case strings.ContainsAny(bare, "0123456789"):
		return goLayout
	case strings.Contains(bare, "%"):
		return strftime
	default:
		return letters
	}
}

func stripQuoted(pattern string) string {
	var b strings.Builder
	quoted := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\'' {
			quoted = !quoted
			continue
		}
		if !quoted {
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}

// Layout translates a caller-supplied pattern into a Go time layout.
//
// Patterns with an ASCII digit outside quotes are Go reference layouts and
// are returned unchanged. Patterns containing '%' are strftime patterns.
// Anything else is read as letter tokens such as "yyyy-MM-dd HH:mm:ss",
// with 'single quoted' runs copied literally. Unknown characters are kept.
//
// A quoted literal that itself looks like a layout element ('Q1', 'Mon')
// is reinterpreted by time.Format; Format keeps such literals intact.
func Layout(pattern string) string {
	switch dialectOf(pattern) {
	case goLayout:
		return pattern
	case strftime:
		return strftimeLayout(pattern)
	default:
		var b strings.Builder
		for _, seg := range letterSegments(pattern) {
			b.WriteString(seg.text)
		}
		return b.String()
	}
}

func strftimeLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 == len(pattern) {
			b.WriteByte(c)
			continue
		}
		if repl, ok := strftimeTokens[pattern[i+1]]; ok {
			if pattern[i+1] == 'f' && !strings.HasSuffix(b.String(), ".") {
				// Go only renders fractional seconds after a '.' or ','
				b.WriteByte('.')
			}
			b.WriteString(repl)
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// segment is a run of Go layout text, or of literal text when literal is set.
type segment struct {
	text    string
	literal bool
}

func letterSegments(pattern string) []segment {
	var segs []segment
	var b strings.Builder
	flush := func(literal bool) {
		if b.Len() > 0 {
			segs = append(segs, segment{text: b.String(), literal: literal})
			b.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		if pattern[i] == '\'' {
			flush(false)
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				flush(true)
				break
			}
			if end == 0 {
				// '' is an escaped quote
				b.WriteByte('\'')
			} else {
				b.WriteString(pattern[i+1 : i+1+end])
			}
			flush(true)
			i += end + 2
			continue
		}

		matched := false
		for _, t := range letterTokens {
			if strings.HasPrefix(pattern[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	flush(false)
	return segs
}
