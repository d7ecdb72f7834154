package devotion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jpbalagtas/church-companion-api/pkg/config"
)

// StartScheduler keeps today's devotion fresh.
// - In dev: checks every hour.
// - In prod: checks every 24 hours.
// Each tick re-evaluates the calendar date, so the chapter rotation
// advances even while the process stays up across midnight.
func (s *DevotionService) StartScheduler(ctx context.Context) {
	tickerDuration := time.Hour

	if config.GetAppEnv() == "production" {
		tickerDuration = 24 * time.Hour
	}

	ticker := time.NewTicker(tickerDuration)
	defer ticker.Stop()

	log.Printf("Devotion scheduler started (%s interval)\n", tickerDuration)

	for {
		select {
		case <-ctx.Done():
			log.Println("Devotion scheduler stopped gracefully")
			return
		case <-ticker.C:
			s.ensureTodayDevotion(ctx)
		}
	}
}

// ensureTodayDevotion generates and stores a devotion for the current
// date when none exists yet.
func (s *DevotionService) ensureTodayDevotion(ctx context.Context) {
	if s.repo == nil {
		return
	}

	today := TodayKey(s.now())
	_, err := s.repo.FetchToday(ctx, today)
	if err == nil {
		return
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("scheduler: could not check today's devotion: %v", err)
		return
	}

	chapter := ChapterForDate(s.now(), s.startDate, s.startChapter)
	verseRef := verseReference(chapter)

	result := s.GenerateAndSave(ctx, verseRef)
	if !result.Saved {
		log.Printf("scheduler: generated devotion for %s was not persisted", today)
		return
	}
	log.Printf("scheduler: devotion ready for %s (%s, fallback=%t)", today, verseRef, result.IsFallback)
}

func verseReference(chapter int) string {
	return fmt.Sprintf("Psalms %d", chapter)
}
