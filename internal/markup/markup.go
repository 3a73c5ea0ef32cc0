// Package markup parses the lightweight emphasis convention used in
// generated question text: substrings wrapped in ** render emphasized,
// everything else renders plain.
package markup

import "strings"

// SpanKind distinguishes plain text from emphasized text.
type SpanKind int

const (
	Plain SpanKind = iota
	Emphasis
)

// Span is one run of text with a single rendering style.
type Span struct {
	Kind SpanKind
	Text string
}

const marker = "**"

// Parse lexes text into alternating plain/emphasis spans. An unpaired
// trailing marker is treated as literal text rather than dropped, so a
// truncated generator response still renders everything it contained.
// Empty spans are never emitted.
func Parse(text string) []Span {
	var spans []Span
	emphasized := false

	for len(text) > 0 {
		i := strings.Index(text, marker)
		if i < 0 {
			break
		}
		if i > 0 {
			spans = append(spans, Span{Kind: kind(emphasized), Text: text[:i]})
		}
		text = text[i+len(marker):]
		emphasized = !emphasized
	}

	if len(text) > 0 {
		if emphasized {
			// Unpaired opener: restore the marker as literal text.
			spans = append(spans, Span{Kind: Plain, Text: marker + text})
		} else {
			spans = append(spans, Span{Kind: Plain, Text: text})
		}
	}

	return spans
}

func kind(emphasized bool) SpanKind {
	if emphasized {
		return Emphasis
	}
	return Plain
}
