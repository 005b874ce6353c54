package locwidget

import "strings"

// DefaultMarker is the opening tag signature of the widget region in the
// host page.
const DefaultMarker = `<div id="main-content"`

// ExtractRegion returns the inner content of the region opened by marker,
// trimmed of surrounding whitespace. Same-named tags nested inside the
// region are balanced, so the result ends at the region's own closing tag.
//
// Only the first occurrence of marker is considered.
// Returns ENOTFOUND if marker does not occur in document, EUNBALANCED if the
// region is never closed and EINVALID if marker is not an opening tag.
func ExtractRegion(document, marker string) (string, error) {
	tag := tagName(marker)
	if tag == "" {
		return "", Errorf(EINVALID, "marker %q is not an opening tag", marker)
	}

	start := strings.Index(document, marker)
	if start == -1 {
		return "", Errorf(ENOTFOUND, "could not find %s", marker)
	}

	gt := strings.IndexByte(document[start+len(marker)-1:], '>')
	if gt == -1 {
		return "", Errorf(EUNBALANCED, "opening tag %s is never terminated", marker)
	}
	contentStart := start + len(marker) - 1 + gt + 1

	openTag := "<" + tag
	closeTag := "</" + tag + ">"

	depth := 1
	pos := contentStart
	for {
		nextClose := indexFrom(document, closeTag, pos)
		if nextClose == -1 {
			return "", Errorf(EUNBALANCED, "could not find matching closing %s for %s", closeTag, marker)
		}

		nextOpen := indexOpenTag(document, openTag, pos)
		if nextOpen != -1 && nextOpen < nextClose {
			depth++
			pos = nextOpen + len(openTag)
			continue
		}

		depth--
		if depth == 0 {
			return strings.TrimSpace(document[contentStart:nextClose]), nil
		}
		pos = nextClose + len(closeTag)
	}
}

// tagName returns the element name of an opening tag signature such as
// `<div id="main"`, or the empty string if marker does not start one.
func tagName(marker string) string {
	if !strings.HasPrefix(marker, "<") {
		return ""
	}
	end := 1
	for end < len(marker) && isNameByte(marker[end]) {
		end++
	}
	if end == 1 {
		return ""
	}
	if end < len(marker) && !isTagBoundary(marker[end]) {
		return ""
	}
	return marker[1:end]
}

// indexFrom returns the index of the first occurrence of substr in s at or
// after from, or -1.
func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}
	return from + i
}

// indexOpenTag finds the next opening tag such as "<div" at or after from.
// The name must be followed by whitespace, '>' or '/', so "<div" does not
// match "<divider".
func indexOpenTag(s, openTag string, from int) int {
	for {
		i := indexFrom(s, openTag, from)
		if i == -1 {
			return -1
		}
		next := i + len(openTag)
		if next == len(s) || isTagBoundary(s[next]) {
			return i
		}
		from = next
	}
}

func isNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '-'
}

func isTagBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '>', '/':
		return true
	}
	return false
}
