// Package domain defines the types and interfaces for the wrapped service
package domain

import "time"

// ContributionDay is one calendar day of contribution activity
// Weekday is 0 to 6 with 0 meaning Sunday
type ContributionDay struct {
	ContributionCount int    `json:"contributionCount"`
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
}

// Week is one calendar week of exactly seven days
// leading and trailing days outside the data range are zero filled
type Week struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

// UserProfile is the passthrough identity block of a snapshot
type UserProfile struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl"`
}

// Stats holds the aggregate activity counters
type Stats struct {
	Commits    int `json:"commits"`
	PRs        int `json:"prs"`
	Issues     int `json:"issues"`
	Stars      int `json:"stars"`
	Last90Days int `json:"last90Days"`
}

// RepoSummary is one ranked repository entry
type RepoSummary struct {
	Name          string `json:"name"`
	Stars         int    `json:"stars"`
	Forks         int    `json:"forks"`
	Language      string `json:"language,omitempty"`
	LanguageColor string `json:"languageColor,omitempty"`
}

// Language is one entry of the dominant language distribution
type Language struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Color   string `json:"color"`
	Percent int    `json:"percent"`
}

// Streaks holds the run length derivations over the calendar
type Streaks struct {
	Current      int `json:"current"`
	Longest      int `json:"longest"`
	LongestBreak int `json:"longestBreak"`
}

// Timing holds the peak activity hour and weekday
type Timing struct {
	PeakHour  int `json:"peakHour"`
	ActiveDay int `json:"activeDay"`
}

// WorkStyle splits contribution volume into weekend and weekday sums
type WorkStyle struct {
	Weekend int `json:"weekend"`
	Weekday int `json:"weekday"`
}

// MostProductiveDay is the single highest contribution day
type MostProductiveDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CodeStats holds the yearly line change totals
// Estimated is true when the randomized placeholder was substituted for an
// all zero churn result so consumers can label it
type CodeStats struct {
	Additions int  `json:"additions"`
	Deletions int  `json:"deletions"`
	Estimated bool `json:"estimated"`
}

// Snapshot is the aggregator's sole output, built once per request and
// never mutated afterward
type Snapshot struct {
	User              UserProfile       `json:"user"`
	Stats             Stats             `json:"stats"`
	Repos             []RepoSummary     `json:"repos"`
	Languages         []Language        `json:"languages"`
	Heatmap           []Week            `json:"heatmap"`
	Streaks           Streaks           `json:"streaks"`
	Timing            Timing            `json:"timing"`
	WorkStyle         WorkStyle         `json:"workStyle"`
	MostProductiveDay MostProductiveDay `json:"mostProductiveDay"`
	CodeStats         CodeStats         `json:"codeStats"`
	IsExact           bool              `json:"isExact"`
	GeneratedAt       time.Time         `json:"generatedAt"`
}

// ChurnCandidate names one repository sampled for churn enrichment
type ChurnCandidate struct {
	Owner string
	Name  string
}

// Evidence is the unified intermediate both fetch paths produce
// all downstream derivation consumes only this type
type Evidence struct {
	Calendar   []Week
	Times      []time.Time
	Repos      []RepoSummary
	Commits    int
	PRs        int
	Issues     int
	Last90Days int
	ChurnRepos []ChurnCandidate
	IsExact    bool
}
