package osversion

import (
	"strings"
	"unicode/utf8"
)

// joinFields serializes the fields as `"f1", "f2", ...`. Every field,
// including the first, is double-quoted and escaped. An empty list yields
// the empty string.
func joinFields(fields []string) string {
	var out strings.Builder
	for i, f := range fields {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(QuoteField(f))
	}
	return out.String()
}

// QuoteField escapes a single raw value and wraps it in double quotes,
// producing exactly the form used for each field of the diagnostic line.
// Callers appending their own trailing fields (such as a build-time version
// tag) should use it so the result stays parseable.
func QuoteField(field string) string {
	return `"` + escapeField(field) + `"`
}

// escapeField backslash-escapes the characters that are significant inside
// a double-quoted field: backslash, double quote, and control bytes.
// Control bytes get their named C escape where one exists and three-digit
// octal otherwise. Printable ASCII and complete UTF-8 sequences pass
// through unchanged; bytes that do not form a valid UTF-8 rune are
// octal-escaped so the output is always valid UTF-8.
func escapeField(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				writeOctalEscape(&out, c)
				i++
				continue
			}
			out.WriteString(s[i : i+size])
			i += size
			continue
		}

		switch c {
		case '\\':
			out.WriteString(`\\`)
		case '"':
			out.WriteString(`\"`)
		case '\b':
			out.WriteString(`\b`)
		case '\f':
			out.WriteString(`\f`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		case '\v':
			out.WriteString(`\v`)
		default:
			if c < 0x20 || c == 0x7f {
				writeOctalEscape(&out, c)
			} else {
				out.WriteByte(c)
			}
		}
		i++
	}

	return out.String()
}

func writeOctalEscape(out *strings.Builder, c byte) {
	out.Write([]byte{'\\', '0' + (c>>6)&7, '0' + (c>>3)&7, '0' + c&7})
}
