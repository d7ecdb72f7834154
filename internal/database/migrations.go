package database

import (
	"context"
	"fmt"
	"log"
)

// migrations run in order on startup. Statements are idempotent so a
// restart is always safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS daily_devotions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		published_date DATE NOT NULL,
		word_verse TEXT NOT NULL,
		word_text TEXT NOT NULL DEFAULT '',
		devotion_title TEXT NOT NULL DEFAULT '',
		devotion_content TEXT NOT NULL DEFAULT '',
		tagalog_word_text TEXT,
		tagalog_devotion_content TEXT,
		audio_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT daily_devotions_published_date_key UNIQUE (published_date)
	)`,
	`CREATE TABLE IF NOT EXISTS prayer_requests (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		request_text TEXT NOT NULL,
		is_anonymous BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS prayer_team_assignments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		assignment_date DATE NOT NULL,
		team_name TEXT NOT NULL,
		leader_name TEXT NOT NULL,
		session_type TEXT NOT NULL CHECK (session_type IN ('morning', 'evening')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_devotions_published_date
		ON daily_devotions (published_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_prayer_team_assignments_date
		ON prayer_team_assignments (assignment_date)`,
}

func (s *service) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	log.Printf("migrations applied (%d statements)", len(migrations))
	return nil
}
