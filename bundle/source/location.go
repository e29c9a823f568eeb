// Package source maps byte offsets in text files to line:column positions.
package source

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Location struct {
	Line   int // 1-based
	Column int // 1-based, in runes
}

// Locate computes the location of byteoffset within buf. A leading UTF-8 BOM
// is skipped and \r\n, \r, \n all count as one line break.
func Locate(buf string, byteoffset int) Location {
	cur, end := 0, len(buf)
	if strings.HasPrefix(buf, "\xef\xbb\xbf") {
		cur = 3
	}
	if byteoffset > end {
		byteoffset = end
	}
	if byteoffset < cur {
		byteoffset = cur
	}

	loc := Location{Line: 1}
	lineStart := cur

	for cur < byteoffset {
		c := buf[cur]
		cur++
		if c == '\n' {
			loc.Line++
			lineStart = cur
		} else if c == '\r' {
			if cur < byteoffset && buf[cur] == '\n' {
				cur++
			}
			loc.Line++
			lineStart = cur
		}
	}
	loc.Column = 1 + utf8.RuneCountInString(buf[lineStart:byteoffset])

	return loc
}

func (l Location) Valid() bool {
	return l.Line > 0 && l.Column > 0
}

func (l Location) String() string {
	if !l.Valid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
