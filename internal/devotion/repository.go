package devotion

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jpbalagtas/church-companion-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

type DevotionRepo interface {
	// UpsertToday inserts a devotion for its published date or, when a
	// row for that date already exists, replaces the row's fields in a
	// single atomic statement. The existing row keeps its id.
	UpsertToday(ctx context.Context, rec *DevotionRecord) (*DevotionRecord, error)
	// FetchToday returns the devotion for dateKey, or ErrNotFound.
	// An absent row is an expected outcome, not a query fault.
	FetchToday(ctx context.Context, dateKey string) (*DevotionRecord, error)
	// FetchRecent returns up to limit summaries with published_date
	// different from excludingDate, most recent first.
	FetchRecent(ctx context.Context, limit int, excludingDate string) ([]DevotionSummary, error)
}

type repository struct {
	db *sql.DB
}

func NewDevotionRepo(dbService database.Service) DevotionRepo {
	return &repository{db: dbService.DB()}
}

func (r *repository) UpsertToday(ctx context.Context, rec *DevotionRecord) (*DevotionRecord, error) {
	// The unique constraint on published_date makes this atomic: two
	// concurrent saves for the same day cannot both insert.
	query := `
		INSERT INTO daily_devotions
			(published_date, word_verse, word_text, devotion_title, devotion_content,
			 tagalog_word_text, tagalog_devotion_content, audio_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (published_date) DO UPDATE SET
			word_verse = EXCLUDED.word_verse,
			word_text = EXCLUDED.word_text,
			devotion_title = EXCLUDED.devotion_title,
			devotion_content = EXCLUDED.devotion_content,
			tagalog_word_text = EXCLUDED.tagalog_word_text,
			tagalog_devotion_content = EXCLUDED.tagalog_devotion_content,
			audio_url = EXCLUDED.audio_url
		RETURNING id, published_date, word_verse, word_text, devotion_title,
			devotion_content, tagalog_word_text, tagalog_devotion_content, audio_url
	`

	row := r.db.QueryRowContext(ctx, query,
		rec.PublishedDate,
		rec.WordVerse,
		rec.WordText,
		rec.DevotionTitle,
		rec.DevotionContent,
		rec.TagalogWordText,
		rec.TagalogDevotionContent,
		rec.AudioURL,
	)

	saved, err := scanDevotion(row)
	if err != nil {
		return nil, ErrInternalServer
	}
	return saved, nil
}

func (r *repository) FetchToday(ctx context.Context, dateKey string) (*DevotionRecord, error) {
	query := `
		SELECT id, published_date, word_verse, word_text, devotion_title,
			devotion_content, tagalog_word_text, tagalog_devotion_content, audio_url
		FROM daily_devotions
		WHERE published_date = $1
	`

	rec, err := scanDevotion(r.db.QueryRowContext(ctx, query, dateKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	return rec, nil
}

func (r *repository) FetchRecent(ctx context.Context, limit int, excludingDate string) ([]DevotionSummary, error) {
	query := `
		SELECT id, published_date, word_verse, devotion_title
		FROM daily_devotions
		WHERE published_date <> $1
		ORDER BY published_date DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, excludingDate, limit)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var summaries []DevotionSummary
	for rows.Next() {
		var s DevotionSummary
		var published time.Time
		if err := rows.Scan(&s.ID, &published, &s.WordVerse, &s.DevotionTitle); err != nil {
			return nil, ErrInternalServer
		}
		s.PublishedDate = published.Format(DateLayout)
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return summaries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevotion(row rowScanner) (*DevotionRecord, error) {
	var rec DevotionRecord
	var published time.Time
	err := row.Scan(
		&rec.ID,
		&published,
		&rec.WordVerse,
		&rec.WordText,
		&rec.DevotionTitle,
		&rec.DevotionContent,
		&rec.TagalogWordText,
		&rec.TagalogDevotionContent,
		&rec.AudioURL,
	)
	if err != nil {
		return nil, err
	}
	rec.PublishedDate = published.Format(DateLayout)
	return &rec, nil
}
