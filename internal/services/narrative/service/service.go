// Package service implements the narrative generator client
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"gitwrapped/internal/platform/logger"
	"gitwrapped/internal/services/narrative/domain"
)

// Config for the narrative client
type Config struct {
	// Endpoint is the generator URL; empty disables remote generation and
	// every call returns the fallback persona
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Service implements domain.GeneratorPort against a remote generator
// endpoint. It deliberately swallows every failure mode: the persona is
// decoration, the snapshot must never suffer for it
type Service struct {
	cfg  Config
	http *http.Client
	log  logger.Logger
}

// New constructs the narrative client
func New(cfg Config) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Service{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  *logger.Named("narrative"),
	}
}

// Generate implements domain.GeneratorPort
func (s *Service) Generate(ctx context.Context, p domain.Projection) domain.Persona {
	if s.cfg.Endpoint == "" {
		return domain.FallbackPersona()
	}

	body, err := json.Marshal(p)
	if err != nil {
		s.log.Warn().Err(err).Msg("projection marshal failed, using fallback")
		return domain.FallbackPersona()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		s.log.Warn().Err(err).Msg("generator request build failed, using fallback")
		return domain.FallbackPersona()
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Msg("generator call failed, using fallback")
		return domain.FallbackPersona()
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.log.Error().Err(cerr).Msg("generator close body failed")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warn().Int("status", resp.StatusCode).Msg("generator non 2xx, using fallback")
		return domain.FallbackPersona()
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		s.log.Warn().Err(err).Msg("generator read failed, using fallback")
		return domain.FallbackPersona()
	}

	var out domain.Persona
	if err := json.Unmarshal(b, &out); err != nil {
		s.log.Warn().Err(err).Msg("generator decode failed, using fallback")
		return domain.FallbackPersona()
	}
	if out.Title == "" || !out.DisciplineLevel.Valid() {
		s.log.Warn().Str("rank", string(out.DisciplineLevel)).Msg("generator persona out of shape, using fallback")
		return domain.FallbackPersona()
	}
	return out
}
