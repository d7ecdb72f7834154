package devotion

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jpbalagtas/church-companion-api/pkg/config"
)

// ErrStorageNotConfigured is returned by persistence operations when
// the server was started without database credentials.
var ErrStorageNotConfigured = errors.New("storage not configured")

const recentLimit = 3

// DevotionService composes the chapter rotation, the generator and the
// store into the daily devotion flows.
type DevotionService struct {
	repo         DevotionRepo // nil when storage is not configured
	gen          *Generator
	startDate    time.Time
	startChapter int
	now          func() time.Time
}

func NewDevotionService(repo DevotionRepo, gen *Generator, cfg *config.Config) DevotionService {
	startDate := DefaultStartDate
	if cfg.StartDate != "" {
		if parsed, err := time.Parse(DateLayout, cfg.StartDate); err == nil {
			startDate = parsed
		} else {
			log.Printf("invalid DEVOTION_START_DATE %q, using default: %v", cfg.StartDate, err)
		}
	}
	startChapter := cfg.StartChapter
	if startChapter == 0 {
		startChapter = DefaultChapter
	}

	return DevotionService{
		repo:         repo,
		gen:          gen,
		startDate:    startDate,
		startChapter: startChapter,
		now:          time.Now,
	}
}

// GenerateAndSave runs the generate-then-persist flow. Generation is
// total; a persistence fault is absorbed and reported through the
// Saved flag so fresh content is never discarded over a storage issue.
func (s *DevotionService) GenerateAndSave(ctx context.Context, verseRef string) *GenerateResult {
	if verseRef == "" {
		verseRef = DefaultVerse
	}

	rec, outcome := s.gen.Generate(ctx, verseRef)
	result := &GenerateResult{
		DevotionRecord: *rec,
		IsFallback:     outcome == OutcomeFallback,
	}

	if s.repo == nil {
		return result
	}

	saved, err := s.repo.UpsertToday(ctx, rec)
	if err != nil {
		log.Printf("could not persist generated devotion: %v", err)
		return result
	}

	result.DevotionRecord = *saved
	result.Saved = true
	return result
}

// SaveDevotion persists a devotion under today's date key. Unlike
// generation, storage faults propagate to the caller.
func (s *DevotionService) SaveDevotion(ctx context.Context, rec *DevotionRecord) (*DevotionRecord, error) {
	if s.repo == nil {
		return nil, ErrStorageNotConfigured
	}

	// One devotion per day: the save flow always targets today.
	rec.PublishedDate = TodayKey(s.now())

	saved, err := s.repo.UpsertToday(ctx, rec)
	if err != nil {
		log.Printf("error saving devotion: %v", err)
		return nil, err
	}
	return saved, nil
}

// Dashboard builds the daily devotion view. The bundled chapter track
// always renders; the stored devotion and recent list are fetched
// concurrently and a genuine fault on either fails the load, while an
// absent today-row is normal.
func (s *DevotionService) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.now()
	today := TodayKey(now)
	chapter := ChapterForDate(now, s.startDate, s.startChapter)
	entry := TextFor(chapter)

	dash := &Dashboard{
		Date:            today,
		Chapter:         chapter,
		ChapterText:     entry,
		WordText:        FirstLine(entry.English),
		TagalogWordText: FirstLine(entry.Tagalog),
		Recent:          []DevotionSummary{},
	}

	if s.repo == nil {
		return dash, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rec, err := s.repo.FetchToday(gctx, today)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		}
		dash.Today = rec
		return nil
	})

	g.Go(func() error {
		recent, err := s.repo.FetchRecent(gctx, recentLimit, today)
		if err != nil {
			return err
		}
		if recent != nil {
			dash.Recent = recent
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("error loading devotion dashboard: %v", err)
		return nil, err
	}
	return dash, nil
}
