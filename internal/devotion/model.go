package devotion

import "time"

// DateLayout is the wire and storage format for devotion dates.
const DateLayout = "2006-01-02"

// DevotionRecord is one devotion entry. PublishedDate is the natural
// key: at most one record per calendar date.
type DevotionRecord struct {
	ID                     string  `json:"id,omitempty"`
	PublishedDate          string  `json:"published_date"`
	WordVerse              string  `json:"word_verse"`
	WordText               string  `json:"word_text"`
	DevotionTitle          string  `json:"devotion_title"`
	DevotionContent        string  `json:"devotion_content"`
	TagalogWordText        *string `json:"tagalog_word_text"`
	TagalogDevotionContent *string `json:"tagalog_devotion_content"`
	AudioURL               *string `json:"audio_url"`
}

// DevotionSummary is the trimmed shape returned for the recent list.
// Full content is deliberately left out to keep the payload small.
type DevotionSummary struct {
	ID            string `json:"id"`
	PublishedDate string `json:"published_date"`
	WordVerse     string `json:"word_verse"`
	DevotionTitle string `json:"devotion_title"`
}

// ChapterTextEntry holds the bundled full-chapter text in both
// languages. Loaded at process start, never mutated.
type ChapterTextEntry struct {
	English string `json:"english"`
	Tagalog string `json:"tagalog"`
}

type GenerateRequest struct {
	Verse string `json:"verse"`
}

// GenerateResult is what the generate flow hands back: the record,
// whether it came from the model or the bundled fallback, and whether
// persistence succeeded.
type GenerateResult struct {
	DevotionRecord
	IsFallback bool `json:"is_fallback"`
	Saved      bool `json:"saved"`
}

// Dashboard is the composed view for the daily devotion screen. The
// bundled chapter content and the stored devotion are two independent
// tracks; either can be present without the other.
type Dashboard struct {
	Date            string            `json:"date"`
	Chapter         int               `json:"chapter"`
	ChapterText     ChapterTextEntry  `json:"chapter_text"`
	WordText        string            `json:"word_text"`
	TagalogWordText string            `json:"tagalog_word_text"`
	Today           *DevotionRecord   `json:"today"`
	Recent          []DevotionSummary `json:"recent"`
}

// TodayKey formats now as the local calendar date key.
func TodayKey(now time.Time) string {
	return now.Format(DateLayout)
}
