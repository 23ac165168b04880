package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// SoftHyphen marks an optional break inside a word. It is invisible unless
// a line breaks there, where it is rendered as "-".
const SoftHyphen = "\u00ad"

// Wrap breaks text into lines no wider than width cells. Lines break at
// spaces. A word too long for the rest of the line breaks at its last soft
// hyphen that fits; a word with no usable soft hyphen that is too long for
// an empty line is cut at the width.
func Wrap(text string, width int) []string {
	width = max(width, 1)

	var (
		lines []string
		line  strings.Builder
		lineW int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}
	put := func(s string) {
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(s)
		lineW += lipgloss.Width(s)
	}

	for _, word := range strings.Fields(text) {
		for word != "" {
			plain := strings.ReplaceAll(word, SoftHyphen, "")
			room := width - lineW
			if lineW > 0 {
				room--
			}
			if lipgloss.Width(plain) <= room {
				put(plain)
				break
			}
			if head, tail, ok := hyphenate(word, room); ok {
				put(head + "-")
				flush()
				word = tail
				continue
			}
			if lineW > 0 {
				flush()
				continue
			}
			head, tail := cut(plain, width)
			put(head)
			flush()
			word = tail
		}
	}
	if lineW > 0 {
		flush()
	}
	return lines
}

// hyphenate splits word at the last soft hyphen whose head plus "-" fits in
// room cells.
func hyphenate(word string, room int) (head, tail string, ok bool) {
	parts := strings.Split(word, SoftHyphen)
	for j := len(parts) - 1; j >= 1; j-- {
		head = strings.Join(parts[:j], "")
		rest := parts[j:]
		if head == "" || strings.Join(rest, "") == "" {
			continue
		}
		if lipgloss.Width(head)+1 <= room {
			return head, strings.Join(rest, SoftHyphen), true
		}
	}
	return "", "", false
}

// cut returns the longest prefix of s that fits in width cells, always at
// least one rune, and the remainder.
func cut(s string, width int) (string, string) {
	rs := []rune(s)
	w := 0
	for i, r := range rs {
		rw := lipgloss.Width(string(r))
		if i > 0 && w+rw > width {
			return string(rs[:i]), string(rs[i:])
		}
		w += rw
	}
	return s, ""
}
