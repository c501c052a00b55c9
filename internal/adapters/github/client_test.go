package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	perr "gitwrapped/internal/platform/errors"
)

func testClient(t *testing.T, h http.Handler, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts.BaseURL = srv.URL
	c := NewClient(opts)
	c.sleep = func(time.Duration) {}
	return c
}

func TestDoSendsAuthAndAccept(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "token sekrit" {
			t.Errorf("authorization header got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("accept header got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}), Options{})

	resp, err := c.Do(context.Background(), http.MethodGet, "/users/octo", "sekrit", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = resp.Body.Close()
}

func TestDoRetriesTransientThenSucceeds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var slept atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}), Options{MaxRetries: 3, RetryBase: time.Millisecond})
	c.sleep = func(time.Duration) { slept.Add(1) }

	resp, err := c.Do(context.Background(), http.MethodGet, "/x", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = resp.Body.Close()
	if calls.Load() != 3 {
		t.Fatalf("calls got %d want 3", calls.Load())
	}
	if slept.Load() != 2 {
		t.Fatalf("sleeps got %d want 2", slept.Load())
	}
}

func TestDoRateLimitedHonorsRetryAfter(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var waited time.Duration
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusOK)
	}), Options{MaxRetries: 2, RetryBase: time.Millisecond})
	c.sleep = func(d time.Duration) { waited = d }

	resp, err := c.Do(context.Background(), http.MethodGet, "/x", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = resp.Body.Close()
	if waited != 7*time.Second {
		t.Fatalf("waited %v want 7s", waited)
	}
}

func TestDoGivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}), Options{MaxRetries: 2, RetryBase: time.Millisecond})

	_, err := c.Do(context.Background(), http.MethodGet, "/x", "", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("error code got %v", err)
	}
}

func TestUserByLoginNotFound(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}), Options{})

	_, err := c.UserByLogin(context.Background(), "ghost", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("error code got %v", err)
	}
}

func TestContributorStatsPending(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}), Options{})

	stats, pending, err := c.ContributorStats(context.Background(), "octo", "alpha", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pending {
		t.Fatal("expected pending")
	}
	if stats != nil {
		t.Fatalf("stats got %v want nil", stats)
	}
}

func TestContributionsByYearParses(t *testing.T) {
	t.Parallel()

	body := `{"data":{"user":{
		"contributionsCollection":{
			"totalCommitContributions":9,
			"totalPullRequestContributions":2,
			"totalIssueContributions":1,
			"contributionCalendar":{"weeks":[{"contributionDays":[
				{"contributionCount":1,"date":"2025-01-05","weekday":0}
			]}]},
			"commitContributionsByRepository":[
				{"repository":{"name":"alpha","owner":{"login":"octo"}},
				 "contributions":{"nodes":[{"occurredAt":"2025-01-05T10:00:00Z"}]}},
				{"repository":{"name":"empty","owner":{"login":"octo"}},
				 "contributions":{"nodes":[]}}
			],
			"pullRequestContributions":{"nodes":[{"occurredAt":"2025-01-06T11:00:00Z"}]},
			"issueContributions":{"nodes":[]}
		},
		"repositories":{"nodes":[{"name":"alpha","stargazerCount":3,"primaryLanguage":{"name":"Go","color":"#00ADD8"}}]}
	}}}`

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graphql" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(body))
	}), Options{})

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	got, err := c.ContributionsByYear(context.Background(), "octo", "sekrit", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalCommits != 9 || got.TotalPRs != 2 || got.TotalIssues != 1 {
		t.Fatalf("totals got %+v", got)
	}
	if len(got.Weeks) != 1 || len(got.Weeks[0].ContributionDays) != 1 {
		t.Fatalf("weeks got %+v", got.Weeks)
	}
	// repos with no commit nodes contribute neither a sample nor a candidate
	if len(got.CommitSamples) != 1 || got.CommitSamples[0].Repo != "alpha" {
		t.Fatalf("samples got %+v", got.CommitSamples)
	}
	if len(got.PRTimes) != 1 || len(got.IssueTimes) != 0 {
		t.Fatalf("times got prs=%d issues=%d", len(got.PRTimes), len(got.IssueTimes))
	}
	if len(got.Repos) != 1 || got.Repos[0].PrimaryLanguage == nil {
		t.Fatalf("repos got %+v", got.Repos)
	}
}

func TestContributionsByYearUserMissing(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"user":null}}`))
	}), Options{})

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.ContributionsByYear(context.Background(), "ghost", "sekrit", from, from.AddDate(1, 0, 0))
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("error code got %v", err)
	}
}
