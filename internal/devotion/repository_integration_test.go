//go:build integration

package devotion

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jpbalagtas/church-companion-api/internal/database"
)

// setupRepo spins up a throwaway Postgres, runs migrations and returns
// a repository against it.
func setupRepo(t *testing.T) DevotionRepo {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("church_companion_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := database.NewFromDB(db)
	require.NoError(t, svc.Migrate(ctx))

	return NewDevotionRepo(svc)
}

func TestUpsertTodayIsAtomic(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	today := TodayKey(time.Now())

	first, err := repo.UpsertToday(ctx, &DevotionRecord{
		PublishedDate:   today,
		WordVerse:       "Psalms 67",
		DevotionTitle:   "First Title",
		DevotionContent: "first content",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.UpsertToday(ctx, &DevotionRecord{
		PublishedDate:   today,
		WordVerse:       "Psalms 67",
		DevotionTitle:   "Second Title",
		DevotionContent: "second content",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "conflict update keeps the original id")
	assert.Equal(t, "second content", second.DevotionContent)

	fetched, err := repo.FetchToday(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, first.ID, fetched.ID)
	assert.Equal(t, "second content", fetched.DevotionContent)
	assert.Equal(t, today, fetched.PublishedDate)
}

func TestFetchTodayNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.FetchToday(context.Background(), "1999-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchRecentExcludesTodayAndSorts(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	dates := []string{"2025-07-28", "2025-07-29", "2025-07-30", "2025-07-31", "2025-08-01"}
	for _, date := range dates {
		_, err := repo.UpsertToday(ctx, &DevotionRecord{
			PublishedDate: date,
			WordVerse:     "Psalms 67",
			DevotionTitle: "Devotion for " + date,
		})
		require.NoError(t, err)
	}

	recent, err := repo.FetchRecent(ctx, 3, "2025-08-01")
	require.NoError(t, err)

	require.Len(t, recent, 3)
	assert.Equal(t, "2025-07-31", recent[0].PublishedDate)
	assert.Equal(t, "2025-07-30", recent[1].PublishedDate)
	assert.Equal(t, "2025-07-29", recent[2].PublishedDate)
	for _, s := range recent {
		assert.NotEqual(t, "2025-08-01", s.PublishedDate)
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.DevotionTitle)
	}
}

func TestUpsertPreservesNullableFields(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	tagalog := "Pagpalain nawa tayo"
	saved, err := repo.UpsertToday(ctx, &DevotionRecord{
		PublishedDate:   "2025-08-05",
		WordVerse:       "Psalms 67",
		TagalogWordText: &tagalog,
	})
	require.NoError(t, err)

	require.NotNil(t, saved.TagalogWordText)
	assert.Equal(t, tagalog, *saved.TagalogWordText)
	assert.Nil(t, saved.AudioURL)
	assert.Nil(t, saved.TagalogDevotionContent)
}
