package devotion

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpbalagtas/church-companion-api/pkg/config"
)

// fakeRepo is an in-memory DevotionRepo keyed by published date, with
// injectable faults.
type fakeRepo struct {
	records   map[string]*DevotionRecord
	upsertErr error
	fetchErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*DevotionRecord)}
}

func (f *fakeRepo) UpsertToday(ctx context.Context, rec *DevotionRecord) (*DevotionRecord, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	stored := *rec
	if existing, ok := f.records[rec.PublishedDate]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = uuid.NewString()
	}
	f.records[stored.PublishedDate] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepo) FetchToday(ctx context.Context, dateKey string) (*DevotionRecord, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	rec, ok := f.records[dateKey]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (f *fakeRepo) FetchRecent(ctx context.Context, limit int, excludingDate string) ([]DevotionSummary, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var summaries []DevotionSummary
	for date, rec := range f.records {
		if date == excludingDate {
			continue
		}
		summaries = append(summaries, DevotionSummary{
			ID:            rec.ID,
			PublishedDate: rec.PublishedDate,
			WordVerse:     rec.WordVerse,
			DevotionTitle: rec.DevotionTitle,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].PublishedDate > summaries[j].PublishedDate
	})
	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

func newTestService(repo DevotionRepo) DevotionService {
	svc := NewDevotionService(repo, &Generator{now: testNow}, &config.Config{
		StartChapter: 67,
		StartDate:    "2025-07-18",
	})
	svc.now = testNow
	return svc
}

func TestGenerateAndSavePersists(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	result := svc.GenerateAndSave(context.Background(), "")

	assert.True(t, result.Saved)
	assert.True(t, result.IsFallback)
	assert.Equal(t, DefaultVerse, result.WordVerse)
	assert.NotEmpty(t, result.ID, "persisted record carries a store-assigned id")
	require.Contains(t, repo.records, testToday)
}

func TestGenerateAndSaveKeepsContentOnStoreFault(t *testing.T) {
	repo := newFakeRepo()
	repo.upsertErr = ErrInternalServer
	svc := newTestService(repo)

	result := svc.GenerateAndSave(context.Background(), "Psalms 67")

	assert.False(t, result.Saved)
	assert.Equal(t, "God's Blessing and Grace", result.DevotionTitle, "generated content survives the storage fault")
	assert.Empty(t, result.ID)
}

func TestGenerateAndSaveWithoutStorage(t *testing.T) {
	svc := newTestService(nil)

	result := svc.GenerateAndSave(context.Background(), "Psalms 67")

	assert.False(t, result.Saved)
	assert.Equal(t, testToday, result.PublishedDate)
}

func TestSaveDevotionUpsertsByDate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	first, err := svc.SaveDevotion(context.Background(), &DevotionRecord{
		WordVerse:       "Psalms 67",
		DevotionTitle:   "First Title",
		DevotionContent: "first content",
	})
	require.NoError(t, err)

	second, err := svc.SaveDevotion(context.Background(), &DevotionRecord{
		WordVerse:       "Psalms 67",
		DevotionTitle:   "Second Title",
		DevotionContent: "second content",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "existing id preserved across upserts")
	assert.Len(t, repo.records, 1, "one record per date")

	today, err := repo.FetchToday(context.Background(), testToday)
	require.NoError(t, err)
	assert.Equal(t, "second content", today.DevotionContent)
}

func TestSaveDevotionWithoutStorage(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.SaveDevotion(context.Background(), &DevotionRecord{})
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
}

func TestDashboardComposition(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	// Seed three past devotions plus today's.
	for _, date := range []string{"2025-07-30", "2025-07-31", "2025-08-01", testToday} {
		_, err := repo.UpsertToday(context.Background(), &DevotionRecord{
			PublishedDate: date,
			WordVerse:     "Psalms 67",
			DevotionTitle: "Devotion for " + date,
		})
		require.NoError(t, err)
	}

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	// 2025-08-02 is 15 days past the 2025-07-18 anchor.
	assert.Equal(t, 82, dash.Chapter)
	assert.Equal(t, TextFor(DefaultChapter), dash.ChapterText, "chapter 82 is unmapped, bundled default shown")
	assert.Equal(t, FirstLine(TextFor(DefaultChapter).English), dash.WordText)

	require.NotNil(t, dash.Today)
	assert.Equal(t, "Devotion for "+testToday, dash.Today.DevotionTitle)

	require.Len(t, dash.Recent, 3)
	for _, s := range dash.Recent {
		assert.NotEqual(t, testToday, s.PublishedDate, "recent list excludes today")
	}
	assert.Equal(t, "2025-08-01", dash.Recent[0].PublishedDate, "most recent first")
	assert.Equal(t, "2025-07-30", dash.Recent[2].PublishedDate)
}

func TestDashboardTodayAbsentIsNotAnError(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Nil(t, dash.Today)
	assert.Empty(t, dash.Recent)
}

func TestDashboardQueryFaultPropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.fetchErr = ErrInternalServer
	svc := newTestService(repo)

	_, err := svc.Dashboard(context.Background())
	assert.Error(t, err)
}

func TestDashboardWithoutStorage(t *testing.T) {
	svc := newTestService(nil)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Nil(t, dash.Today)
	assert.NotEmpty(t, dash.ChapterText.English, "bundled track renders without storage")
}

func TestEnsureTodayDevotion(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	svc.ensureTodayDevotion(context.Background())
	require.Contains(t, repo.records, testToday)
	firstID := repo.records[testToday].ID

	// A second tick must not regenerate.
	svc.ensureTodayDevotion(context.Background())
	assert.Equal(t, firstID, repo.records[testToday].ID)
	assert.Len(t, repo.records, 1)
}

func TestNewDevotionServiceParsesStartDate(t *testing.T) {
	svc := NewDevotionService(nil, &Generator{now: time.Now}, &config.Config{
		StartChapter: 1,
		StartDate:    "not-a-date",
	})
	assert.Equal(t, DefaultStartDate, svc.startDate, "invalid start date falls back to the default anchor")
}
