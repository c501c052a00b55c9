package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gh "gitwrapped/internal/adapters/github"
	"gitwrapped/internal/services/wrapped/domain"
)

func testChurner(t *testing.T, h http.Handler) (*churner, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client := gh.NewClient(gh.Options{BaseURL: srv.URL, Timeout: 2 * time.Second})
	c := newChurner(client, ChurnConfig{Delay: time.Millisecond})
	c.sleep = func(time.Duration) {}
	c.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	c.randInt = func(n int) int { return n / 2 }
	return c, srv
}

func statsBody(login string, weeks ...gh.StatsWeek) []gh.ContributorStats {
	cs := gh.ContributorStats{Weeks: weeks}
	cs.Author.Login = login
	return []gh.ContributorStats{cs}
}

func unixOf(y int, m time.Month, d int) int64 {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

func TestCodeStatsSumsYearWeeks(t *testing.T) {
	t.Parallel()

	c, _ := testChurner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(statsBody("Octo",
			gh.StatsWeek{W: unixOf(2025, time.February, 2), Additions: 100, Deletions: 40},
			gh.StatsWeek{W: unixOf(2025, time.March, 2), Additions: 200, Deletions: 60},
			gh.StatsWeek{W: unixOf(2024, time.December, 1), Additions: 999, Deletions: 999},
		))
	}))

	// case insensitive login match
	got := c.codeStats(context.Background(), "octo", "", []domain.ChurnCandidate{{Owner: "octo", Name: "repo"}})

	assert.Equal(t, 300, got.Additions)
	assert.Equal(t, 100, got.Deletions)
	assert.False(t, got.Estimated)
}

func TestCodeStatsSkipsOutlierWeeks(t *testing.T) {
	t.Parallel()

	c, _ := testChurner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(statsBody("octo",
			gh.StatsWeek{W: unixOf(2025, time.February, 2), Additions: 60_000, Deletions: 10},
			gh.StatsWeek{W: unixOf(2025, time.March, 2), Additions: 10, Deletions: 60_000},
			gh.StatsWeek{W: unixOf(2025, time.April, 6), Additions: 50, Deletions: 20},
		))
	}))

	got := c.codeStats(context.Background(), "octo", "", []domain.ChurnCandidate{{Owner: "octo", Name: "repo"}})

	assert.Equal(t, 50, got.Additions)
	assert.Equal(t, 20, got.Deletions)
}

func TestCodeStatsStillComputingFallsBackToPlaceholder(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, _ := testChurner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusAccepted)
	}))

	cands := []domain.ChurnCandidate{
		{Owner: "octo", Name: "a"},
		{Owner: "octo", Name: "b"},
	}
	got := c.codeStats(context.Background(), "octo", "", cands)

	// three attempts per repo, then the seeded placeholder
	assert.Equal(t, int32(6), calls.Load())
	assert.True(t, got.Estimated)
	assert.Equal(t, 3000+9000/2, got.Additions)
	assert.Equal(t, 1000+4000/2, got.Deletions)
}

func TestCodeStatsErrorDegradesSilently(t *testing.T) {
	t.Parallel()

	c, _ := testChurner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	got := c.codeStats(context.Background(), "octo", "", []domain.ChurnCandidate{{Owner: "octo", Name: "repo"}})

	assert.True(t, got.Estimated)
}

func TestCodeStatsCapsCandidates(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, _ := testChurner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(statsBody("octo",
			gh.StatsWeek{W: unixOf(2025, time.February, 2), Additions: 1, Deletions: 1},
		))
	}))

	cands := make([]domain.ChurnCandidate, 8)
	for i := range cands {
		cands[i] = domain.ChurnCandidate{Owner: "octo", Name: "repo"}
	}
	got := c.codeStats(context.Background(), "octo", "", cands)

	require.Equal(t, int32(5), calls.Load())
	assert.Equal(t, 5, got.Additions)
}
