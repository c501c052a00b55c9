// Package domain defines the types and interfaces for the narrative service
package domain

import (
	"context"

	wrapped "gitwrapped/internal/services/wrapped/domain"
)

// DisciplineRank is the persona rank enum
type DisciplineRank string

// Recognized discipline ranks, anything else from the generator is rejected
const (
	RankS DisciplineRank = "S"
	RankA DisciplineRank = "A"
	RankB DisciplineRank = "B"
	RankC DisciplineRank = "C"
)

// Valid reports whether r is one of the recognized ranks
func (r DisciplineRank) Valid() bool {
	switch r {
	case RankS, RankA, RankB, RankC:
		return true
	}
	return false
}

// Persona is the generator's output shape
type Persona struct {
	Title           string         `json:"title"`
	Remarks         string         `json:"remarks"`
	DisciplineLevel DisciplineRank `json:"disciplineLevel"`
	Vibe            string         `json:"vibe"`
}

// FallbackPersona is returned whenever generation fails in any way
func FallbackPersona() Persona {
	return Persona{
		Title:           "The Vanished Coder",
		Remarks:         "Even the AI couldn't find your commits. Spooky.",
		DisciplineLevel: RankC,
		Vibe:            "Ghost",
	}
}

// Projection is the reduced snapshot view the generator consumes
type Projection struct {
	Username  string            `json:"username" validate:"required,gh_login"`
	Stats     ProjectionStats   `json:"stats"`
	Timing    ProjectionTiming  `json:"timing"`
	Streaks   ProjectionStreaks `json:"streaks"`
	Languages []ProjectionLang  `json:"languages"`
}

// ProjectionStats carries the commit total
type ProjectionStats struct {
	Commits int `json:"commits"`
}

// ProjectionTiming carries the peak hour
type ProjectionTiming struct {
	PeakHour int `json:"peakHour" validate:"min=0,max=23"`
}

// ProjectionStreaks carries the longest streak
type ProjectionStreaks struct {
	Longest int `json:"longest" validate:"min=0"`
}

// ProjectionLang carries one language name
type ProjectionLang struct {
	Name string `json:"name"`
}

// ProjectionOf reduces a snapshot to the generator's input shape
func ProjectionOf(s wrapped.Snapshot) Projection {
	p := Projection{
		Username: s.User.Login,
		Stats:    ProjectionStats{Commits: s.Stats.Commits},
		Timing:   ProjectionTiming{PeakHour: s.Timing.PeakHour},
		Streaks:  ProjectionStreaks{Longest: s.Streaks.Longest},
	}
	for _, l := range s.Languages {
		p.Languages = append(p.Languages, ProjectionLang{Name: l.Name})
	}
	return p
}

// GeneratorPort turns a projection into a persona, never failing
// any generation failure yields the fixed fallback persona
type GeneratorPort interface {
	Generate(ctx context.Context, p Projection) Persona
}
