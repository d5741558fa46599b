package genius

import (
	"html"
	"regexp"
	"strings"
)

var (
	lyricsContainerRe = regexp.MustCompile(`<div[^>]*data-lyrics-container="true"[^>]*>`)
	breakTagRe        = regexp.MustCompile(`<br\s*/?>`)
	tagRe             = regexp.MustCompile(`<[^>]+>`)
	sectionHeaderRe   = regexp.MustCompile(`\[[^\]]*\]`)
	blankRunRe        = regexp.MustCompile(`\n{3,}`)
)

// extractLyrics pulls the lyric text out of a Genius song page. Lyrics live
// in div elements marked data-lyrics-container="true"; section headers like
// [Chorus] are dropped so keyword counting sees only lyric words.
func extractLyrics(page string) string {
	var parts []string
	for {
		loc := lyricsContainerRe.FindStringIndex(page)
		if loc == nil {
			break
		}
		rest := page[loc[1]:]
		body, after := untilContainerEnd(rest)
		parts = append(parts, body)
		page = after
	}
	if len(parts) == 0 {
		return ""
	}

	raw := strings.Join(parts, "\n")
	raw = breakTagRe.ReplaceAllString(raw, "\n")
	raw = tagRe.ReplaceAllString(raw, "")
	raw = html.UnescapeString(raw)
	raw = sectionHeaderRe.ReplaceAllString(raw, "")
	raw = blankRunRe.ReplaceAllString(raw, "\n\n")
	return strings.TrimSpace(raw)
}

// untilContainerEnd returns the markup up to the close of the current div,
// tracking nested divs, plus whatever follows it.
func untilContainerEnd(markup string) (string, string) {
	depth := 1
	offset := 0
	for depth > 0 {
		rest := markup[offset:]
		open := strings.Index(rest, "<div")
		cls := strings.Index(rest, "</div>")
		if cls < 0 {
			return markup, ""
		}
		if open >= 0 && open < cls {
			depth++
			offset += open + len("<div")
			continue
		}
		depth--
		if depth == 0 {
			return markup[:offset+cls], markup[offset+cls+len("</div>"):]
		}
		offset += cls + len("</div>")
	}
	return markup, ""
}
