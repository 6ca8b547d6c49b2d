// ABOUTME: Removes terminal escape sequences and stray control bytes from text
// ABOUTME: Used before painting file or renderer output into cells

package width

import "strings"

const esc = '\x1b'

// StripANSI removes escape sequences from s: CSI, OSC, DCS/APC/PM strings
// and the short two- and three-byte ESC forms.
func StripANSI(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for s != "" {
		i := strings.IndexByte(s, esc)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i+escapeLen(s[i:]):]
	}
	return b.String()
}

// escapeLen returns the length of the escape sequence that starts s.
// Unterminated sequences run to the end of s.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return len(s)
	case ']':
		return controlStringLen(s, true)
	case 'P', '_', '^':
		return controlStringLen(s, false)
	case '(', ')':
		return min(3, len(s))
	}
	return 2
}

// controlStringLen measures a control string ended by ST, or by BEL when
// bel is set.
func controlStringLen(s string, bel bool) int {
	for i := 2; i < len(s); i++ {
		if bel && s[i] == '\a' {
			return i + 1
		}
		if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
			return i + 2
		}
	}
	return len(s)
}

// StripControls drops C0 control characters and DEL, keeping newlines
// and tabs.
func StripControls(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7F:
			return -1
		}
		return r
	}, s)
}
