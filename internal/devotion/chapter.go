package devotion

import (
	"strings"
	"time"
)

// DefaultChapter anchors the rotation: Psalm 67 on 18 July 2025.
const (
	DefaultChapter = 67
	DefaultVerse   = "Psalms 67"
)

var DefaultStartDate = time.Date(2025, time.July, 18, 0, 0, 0, 0, time.UTC)

// ChapterForDate maps a date to the sequential chapter number for that
// day: startChapter plus the number of whole calendar days elapsed
// since startDate. Both dates are normalized to UTC midnight so DST
// transitions cannot skew the day count. Chapter numbers grow without
// bound; TextFor handles unmapped chapters.
func ChapterForDate(date, startDate time.Time, startChapter int) int {
	diffDays := int(midnightUTC(date).Sub(midnightUTC(startDate)).Hours() / 24)
	return startChapter + diffDays
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TextFor returns the bundled bilingual text for a chapter, falling
// back to the default chapter when the rotation has moved past the
// bundled range. It never fails.
func TextFor(chapter int) ChapterTextEntry {
	if entry, ok := psalmChapters[chapter]; ok {
		return entry
	}
	return psalmChapters[DefaultChapter]
}

// FirstLine extracts the key-verse excerpt from a full chapter text.
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
