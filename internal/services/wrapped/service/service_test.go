package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gh "gitwrapped/internal/adapters/github"
	perr "gitwrapped/internal/platform/errors"
)

func testService(t *testing.T, h http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client := gh.NewClient(gh.Options{BaseURL: srv.URL, Timeout: 2 * time.Second})
	s := New(client, Config{Churn: ChurnConfig{Delay: time.Millisecond}})
	s.churn.sleep = func(time.Duration) {}
	s.churn.randInt = func(n int) int { return 0 }
	s.churn.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestAggregateUserNotFound(t *testing.T) {
	t.Parallel()

	s := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))

	_, err := s.Aggregate(context.Background(), "ghost", "")
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}

func TestAggregatePublicPath(t *testing.T) {
	t.Parallel()

	var graphqlHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octo", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"login": "octo", "id": 42, "name": "Octo Cat", "avatar_url": "https://example.test/a.png"})
	})
	mux.HandleFunc("GET /users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		writeJSON(w, []map[string]any{
			{"name": "alpha", "stargazers_count": 7, "forks_count": 1, "language": "Go"},
			{"name": "beta", "stargazers_count": 3, "language": "Go"},
			{"name": "gamma", "stargazers_count": 0},
		})
	})
	mux.HandleFunc("GET /users/octo/events", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"type": "PushEvent", "created_at": "2025-08-20T10:00:00Z", "payload": map[string]any{"size": 3}},
			{"type": "PushEvent", "created_at": "2025-08-21T10:00:00Z", "payload": map[string]any{}},
			{"type": "PullRequestEvent", "created_at": "2025-08-22T11:00:00Z", "payload": map[string]any{"action": "opened"}},
			{"type": "PullRequestEvent", "created_at": "2025-08-22T12:00:00Z", "payload": map[string]any{"action": "closed"}},
			{"type": "IssuesEvent", "created_at": "2025-08-23T09:00:00Z", "payload": map[string]any{"action": "opened"}},
			{"type": "WatchEvent", "created_at": "2025-08-23T09:30:00Z", "payload": map[string]any{}},
		})
	})
	mux.HandleFunc("/repos/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []any{})
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		graphqlHits.Add(1)
		http.Error(w, "should not be called", http.StatusTeapot)
	})

	s := testService(t, mux)
	snap, err := s.Aggregate(context.Background(), "octo", "")
	require.NoError(t, err)

	assert.False(t, snap.IsExact)
	assert.Equal(t, int32(0), graphqlHits.Load())

	assert.Equal(t, "octo", snap.User.Login)
	assert.Equal(t, int64(42), snap.User.ID)

	// push sizes 3 and default 1; one opened PR; four classified timestamps
	assert.Equal(t, 4, snap.Stats.Commits)
	assert.Equal(t, 1, snap.Stats.PRs)
	assert.Equal(t, 0, snap.Stats.Issues)
	assert.Equal(t, 4, snap.Stats.Last90Days)
	assert.Equal(t, 10, snap.Stats.Stars)

	require.NotEmpty(t, snap.Heatmap)
	assert.Len(t, snap.Heatmap, 21)
	for _, wk := range snap.Heatmap {
		assert.Len(t, wk.ContributionDays, 7)
	}

	require.Len(t, snap.Languages, 1)
	assert.Equal(t, "Go", snap.Languages[0].Name)
	assert.Equal(t, 2, snap.Languages[0].Count)
	assert.Equal(t, 100, snap.Languages[0].Percent)
	assert.Equal(t, "#fff", snap.Languages[0].Color)

	// churn got no usable data so the placeholder kicks in, pinned by the
	// swapped rand source
	assert.True(t, snap.CodeStats.Estimated)
	assert.Equal(t, 3000, snap.CodeStats.Additions)
	assert.Equal(t, 1000, snap.CodeStats.Deletions)
}

func TestAggregatePublicPathZeroEvents(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/quiet", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"login": "quiet", "id": 7})
	})
	mux.HandleFunc("GET /users/quiet/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []any{})
	})
	mux.HandleFunc("GET /users/quiet/events", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []any{})
	})

	s := testService(t, mux)
	snap, err := s.Aggregate(context.Background(), "quiet", "")
	require.NoError(t, err)

	assert.Empty(t, snap.Heatmap)
	assert.Zero(t, snap.Streaks)
	assert.Equal(t, 12, snap.Timing.PeakHour)
	assert.Equal(t, 0, snap.Timing.ActiveDay)
	assert.Empty(t, snap.Languages)
	assert.Zero(t, snap.Stats.Stars)
}

func graphqlFixture() map[string]any {
	day := func(date string, count, weekday int) map[string]any {
		return map[string]any{"contributionCount": count, "date": date, "weekday": weekday}
	}
	week := []map[string]any{
		day("2025-08-03", 2, 0),
		day("2025-08-04", 0, 1),
		day("2025-08-05", 1, 2),
		day("2025-08-06", 0, 3),
		day("2025-08-07", 0, 4),
		day("2025-08-08", 3, 5),
		day("2025-08-09", 1, 6),
	}
	return map[string]any{
		"data": map[string]any{
			"user": map[string]any{
				"contributionsCollection": map[string]any{
					"totalCommitContributions":      120,
					"totalPullRequestContributions": 14,
					"totalIssueContributions":       5,
					"contributionCalendar": map[string]any{
						"weeks": []any{map[string]any{"contributionDays": week}},
					},
					"commitContributionsByRepository": []any{
						map[string]any{
							"repository":    map[string]any{"name": "alpha", "owner": map[string]any{"login": "octo"}},
							"contributions": map[string]any{"nodes": []any{map[string]any{"occurredAt": "2025-08-08T22:00:00Z"}}},
						},
					},
					"pullRequestContributions": map[string]any{
						"nodes": []any{map[string]any{"occurredAt": "2025-08-05T22:30:00Z"}},
					},
					"issueContributions": map[string]any{"nodes": []any{}},
				},
				"repositories": map[string]any{
					"nodes": []any{
						map[string]any{"name": "alpha", "stargazerCount": 40, "forkCount": 4, "primaryLanguage": map[string]any{"name": "Go", "color": "#00ADD8"}},
						map[string]any{"name": "beta", "stargazerCount": 2, "primaryLanguage": nil},
					},
				},
			},
		},
	}
}

func TestAggregatePrivilegedPath(t *testing.T) {
	t.Parallel()

	var restRepoHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token sekrit", r.Header.Get("Authorization"))
		writeJSON(w, map[string]any{"login": "octo", "id": 42})
	})
	mux.HandleFunc("POST /graphql", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token sekrit", r.Header.Get("Authorization"))
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "octo", req.Variables["login"])
		writeJSON(w, graphqlFixture())
	})
	mux.HandleFunc("GET /users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		restRepoHits.Add(1)
		http.Error(w, "wrong path", http.StatusTeapot)
	})
	mux.HandleFunc("GET /repos/octo/alpha/stats/contributors", func(w http.ResponseWriter, r *http.Request) {
		body := statsBody("octo", gh.StatsWeek{
			W: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC).Unix(), Additions: 500, Deletions: 200,
		})
		writeJSON(w, body)
	})

	s := testService(t, mux)
	snap, err := s.Aggregate(context.Background(), "octo", "sekrit")
	require.NoError(t, err)

	assert.True(t, snap.IsExact)
	assert.Equal(t, int32(0), restRepoHits.Load())

	assert.Equal(t, 120, snap.Stats.Commits)
	assert.Equal(t, 14, snap.Stats.PRs)
	assert.Equal(t, 5, snap.Stats.Issues)
	assert.Equal(t, 42, snap.Stats.Stars)

	assert.Equal(t, "2025-08-08", snap.MostProductiveDay.Date)
	assert.Equal(t, 3, snap.MostProductiveDay.Count)

	// one sampled commit timestamp and one PR timestamp, both at 22:00 UTC
	assert.Equal(t, 22, snap.Timing.PeakHour)

	require.Len(t, snap.Languages, 1)
	assert.Equal(t, "Go", snap.Languages[0].Name)
	assert.Equal(t, "#00ADD8", snap.Languages[0].Color)

	assert.Equal(t, 500, snap.CodeStats.Additions)
	assert.Equal(t, 200, snap.CodeStats.Deletions)
	assert.False(t, snap.CodeStats.Estimated)
}

func TestAggregatePrivilegedFailureDoesNotFallBack(t *testing.T) {
	t.Parallel()

	var restHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octo", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"login": "octo", "id": 42})
	})
	mux.HandleFunc("POST /graphql", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"errors": []any{map[string]any{"message": "boom"}}})
	})
	mux.HandleFunc("GET /users/octo/events", func(w http.ResponseWriter, r *http.Request) {
		restHits.Add(1)
		writeJSON(w, []any{})
	})

	s := testService(t, mux)
	_, err := s.Aggregate(context.Background(), "octo", "sekrit")

	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUpstream), fmt.Sprintf("got %v", err))
	assert.Equal(t, int32(0), restHits.Load())
}
