package timeline

import (
	"fmt"
	"strings"
)

// FormatChapters renders chapter markers one per line, sorted ascending by
// time. Times under an hour render as M:SS, an hour or more as H:MM:SS with
// no leading zero on the hour. This is the format YouTube chapter
// descriptions expect.
func FormatChapters(markers []ChapterMarker) string {
	sorted := SortMarkers(markers)
	lines := make([]string, len(sorted))
	for i, m := range sorted {
		lines[i] = fmt.Sprintf("%s %s", FormatChapterTime(m.Time), m.Title)
	}
	return strings.Join(lines, "\n")
}

// FormatChapterTime formats a time in seconds as M:SS or H:MM:SS.
func FormatChapterTime(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	if total < 3600 {
		return fmt.Sprintf("%d:%02d", total/60, total%60)
	}
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
