package services

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diaryServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDiaryJSON))
	}))
}

func TestDayReport(t *testing.T) {
	var hits int32
	srv := diaryServer(t, &hits)
	defer srv.Close()
	defer InvalidateCachedPrefix(CacheKey("diary", uint(7)))

	svc := NewDiaryService(NewPlatformAPIServiceWithBase(srv.URL))
	report, err := svc.DayReport(7, "2024-03-18")
	require.NoError(t, err)

	assert.Equal(t, uint(7), report.SubscriberID)
	assert.Equal(t, "2024-03-18", report.Date)

	// meals come back in display order: breakfast then lunch
	require.Len(t, report.Meals, 2)
	assert.Equal(t, "breakfast", report.Meals[0].Meal)
	assert.Equal(t, "lunch", report.Meals[1].Meal)

	// breakfast: 130 g of a per-100g food at 60 kcal → 78 kcal
	require.Len(t, report.Meals[0].Items, 1)
	assert.InDelta(t, 78, report.Meals[0].Items[0].Calories, 1e-9)
	assert.InDelta(t, 130, report.Meals[0].Items[0].Grams, 1e-9)

	// lunch: 2 × "Portie (250.0g)" = 500 g of a 1000 g recipe → half of 400 kcal
	require.Len(t, report.Meals[1].Items, 1)
	assert.InDelta(t, 200, report.Meals[1].Items[0].Calories, 1e-9)

	assert.InDelta(t, 278, report.Day.TotalCalories, 1e-9)

	// goals come from the payload (no DB in tests)
	assert.Equal(t, 2000.0, report.Goals.Calories)
	assert.Greater(t, report.Score.Score, 0)
}

func TestDayReportCached(t *testing.T) {
	var hits int32
	srv := diaryServer(t, &hits)
	defer srv.Close()
	defer InvalidateCachedPrefix(CacheKey("diary", uint(8)))

	svc := NewDiaryService(NewPlatformAPIServiceWithBase(srv.URL))

	first, err := svc.DayReport(8, "2024-03-18")
	require.NoError(t, err)
	second, err := svc.DayReport(8, "2024-03-18")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// a different date is a different cache key
	_, err = svc.DayReport(8, "2024-03-19")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestDaySummary(t *testing.T) {
	var hits int32
	srv := diaryServer(t, &hits)
	defer srv.Close()
	defer InvalidateCachedPrefix(CacheKey("diary", uint(9)))

	svc := NewDiaryService(NewPlatformAPIServiceWithBase(srv.URL))
	summary, err := svc.DaySummary(9, "2024-03-18")
	require.NoError(t, err)

	assert.Contains(t, summary, "Daily summary — 2024-03-18")
	assert.Contains(t, summary, "Breakfast: 78 kcal")
	assert.Contains(t, summary, "Lunch: 200 kcal")
	assert.Contains(t, summary, "Total: 278 kcal")
	assert.Contains(t, summary, "Daily score:")
}
