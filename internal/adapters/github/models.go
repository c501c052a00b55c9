package github

import "time"

// User is a partial GitHub user document with fields we use
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
	HTMLURL     string    `json:"html_url"`
}

// Repo is a partial GitHub repository document from the REST listing
type Repo struct {
	Name       string    `json:"name"`
	FullName   string    `json:"full_name"`
	Owner      User      `json:"owner"`
	Stargazers int       `json:"stargazers_count"`
	Forks      int       `json:"forks_count"`
	Language   string    `json:"language"`
	Fork       bool      `json:"fork"`
	UpdatedAt  time.Time `json:"updated_at"`
	HTMLURL    string    `json:"html_url"`
}

// Event is a partial public timeline event
type Event struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Payload   struct {
		Size   int    `json:"size"`
		Action string `json:"action"`
	} `json:"payload"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
}

// ContributorStats is one contributor's entry from the repo stats endpoint
type ContributorStats struct {
	Author struct {
		Login string `json:"login"`
	} `json:"author"`
	Total int `json:"total"`
	Weeks []StatsWeek `json:"weeks"`
}

// StatsWeek is one weekly bucket of line change figures
// W is the unix timestamp of the week start
type StatsWeek struct {
	W         int64 `json:"w"`
	Additions int   `json:"a"`
	Deletions int   `json:"d"`
	Commits   int   `json:"c"`
}

// CalendarDay is one day of the contribution calendar as GraphQL returns it
type CalendarDay struct {
	ContributionCount int    `json:"contributionCount"`
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
}

// CalendarWeek is one calendar week of exactly seven days
type CalendarWeek struct {
	ContributionDays []CalendarDay `json:"contributionDays"`
}

// GQLLanguage is the primary language node with its display color
type GQLLanguage struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// GQLRepo is a repository node from the GraphQL repositories connection
type GQLRepo struct {
	Name            string       `json:"name"`
	StargazerCount  int          `json:"stargazerCount"`
	ForkCount       int          `json:"forkCount"`
	PrimaryLanguage *GQLLanguage `json:"primaryLanguage"`
}

// CommitSample is the single sampled commit timestamp for one active repo
type CommitSample struct {
	Repo       string
	Owner      string
	OccurredAt time.Time
}

// Contributions is the parsed result of the combined contributions query
type Contributions struct {
	TotalCommits  int
	TotalPRs      int
	TotalIssues   int
	Weeks         []CalendarWeek
	CommitSamples []CommitSample
	PRTimes       []time.Time
	IssueTimes    []time.Time
	Repos         []GQLRepo
}
