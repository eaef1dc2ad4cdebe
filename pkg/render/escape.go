package render

import "strings"

// escapeText escapes character data. Quotes are left alone since they
// carry no meaning outside attribute values.
func escapeText(s string) string {
	if !strings.ContainsAny(s, "&<>\u00a0") {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '\u00a0':
			buf.WriteString("&nbsp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes a double-quoted attribute value. Line breaks and tabs
// are written as character references so values survive reformatting.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, "&\"<>\n\r\t\u00a0") {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		case '\u00a0':
			buf.WriteString("&nbsp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
