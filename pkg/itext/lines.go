package itext

// splitLines splits content on any of "\n", "\r\n", "\r", returning each
// line's runes with the line terminator stripped. This mirrors the
// teacher's BuildLines byte-offset scan but produces rune slices, since
// itext addresses columns by rune rather than by byte (spec.md §3 indexes
// "within a line" — this implementation chooses rune indexing, documented
// in DESIGN.md, since the spec is silent on the unit and no example in the
// pack disagrees for a line-oriented text model).
func splitLines(content string) [][]rune {
	runes := []rune(content)
	if len(runes) == 0 {
		return [][]rune{}
	}

	var lines [][]rune
	start := 0
	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '\n':
			lines = append(lines, append([]rune(nil), runes[start:i]...))
			i++
			start = i
		case '\r':
			lines = append(lines, append([]rune(nil), runes[start:i]...))
			i++
			if i < len(runes) && runes[i] == '\n' {
				i++
			}
			start = i
		default:
			i++
		}
	}
	lines = append(lines, append([]rune(nil), runes[start:]...))
	return lines
}
