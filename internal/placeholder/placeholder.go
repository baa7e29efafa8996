package placeholder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat indicates malformed placeholder syntax or an unresolved placeholder.
var ErrFormat = errors.New("invalid format string")

type segment struct {
	literal string
	field   string
	isField bool
}

// Template is a parsed format string made of literal and placeholder segments.
type Template struct {
	source   string
	segments []segment
}

// Extract returns every placeholder name in format, in order of appearance.
// Duplicates are kept.
func Extract(format string) ([]string, error) {
	tmpl, err := Parse(format)
	if err != nil {
		return nil, err
	}
	return tmpl.Placeholders(), nil
}

// Parse splits a brace-style format string into segments.
//
// {name} is a placeholder, {{ and }} are literal braces. A !conversion or
// :spec suffix after the name is accepted and ignored.
func Parse(format string) (Template, error) {
	var segments []segment
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		ch := format[i]
		switch ch {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				literal.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexAny(format[i+1:], "{}")
			if end == -1 || format[i+1+end] != '}' {
				if end != -1 {
					return Template{}, fmt.Errorf("%w: nested brace at offset %d in %q", ErrFormat, i+1+end, format)
				}
				return Template{}, fmt.Errorf("%w: expected '}' before end of string in %q", ErrFormat, format)
			}
			body := format[i+1 : i+1+end]
			name := fieldName(body)
			if strings.TrimSpace(name) == "" {
				return Template{}, fmt.Errorf("%w: empty placeholder at offset %d in %q", ErrFormat, i, format)
			}
			flush()
			segments = append(segments, segment{field: name, isField: true})
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				literal.WriteByte('}')
				i++
				continue
			}
			return Template{}, fmt.Errorf("%w: single '}' encountered at offset %d in %q", ErrFormat, i, format)
		default:
			literal.WriteByte(ch)
		}
	}
	flush()
	return Template{source: format, segments: segments}, nil
}

// fieldName strips an optional conversion or format spec from a placeholder body.
func fieldName(body string) string {
	if idx := strings.IndexAny(body, "!:"); idx != -1 {
		return body[:idx]
	}
	return body
}

// String returns the original format string.
func (t Template) String() string {
	return t.source
}

// Placeholders returns the placeholder names in order, duplicates included.
func (t Template) Placeholders() []string {
	out := make([]string, 0, len(t.segments))
	for _, seg := range t.segments {
		if seg.isField {
			out = append(out, seg.field)
		}
	}
	return out
}

// Fields returns the distinct placeholder names in first-seen order.
func (t Template) Fields() []string {
	return Unique(t.Placeholders())
}

// Render substitutes values into the template.
func (t Template) Render(values map[string]string) (string, error) {
	var builder strings.Builder
	for _, seg := range t.segments {
		if !seg.isField {
			builder.WriteString(seg.literal)
			continue
		}
		value, ok := values[seg.field]
		if !ok {
			return "", fmt.Errorf("%w: no value for placeholder %q in %q", ErrFormat, seg.field, t.source)
		}
		builder.WriteString(value)
	}
	return builder.String(), nil
}

// Unique removes duplicates while preserving the original order.
func Unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
