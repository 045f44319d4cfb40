package seo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/praxis/praxis/internal/platform/llm"
)

type Service struct {
	keywords KeywordRepository
	audits   AuditRepository
	gen      llm.Generator
}

func NewService(keywords KeywordRepository, audits AuditRepository, gen llm.Generator) *Service {
	return &Service{keywords: keywords, audits: audits, gen: gen}
}

func (s *Service) CreateKeyword(ctx context.Context, k *KeywordSnapshot) error {
	if k.Keyword == "" {
		return fmt.Errorf("keyword is required")
	}
	if k.Position < 1 {
		return fmt.Errorf("position must be at least 1")
	}
	if k.CapturedAt.IsZero() {
		k.CapturedAt = time.Now()
	}
	return s.keywords.Create(ctx, k)
}

func (s *Service) DeleteKeyword(ctx context.Context, id uuid.UUID) error {
	return s.keywords.Delete(ctx, id)
}

func (s *Service) ListKeywords(ctx context.Context, limit, offset int) ([]*KeywordSnapshot, int, error) {
	return s.keywords.List(ctx, limit, offset)
}

func (s *Service) CreateAudit(ctx context.Context, a *PageAudit) error {
	if a.URL == "" {
		return fmt.Errorf("url is required")
	}
	if a.Score < 0 || a.Score > 100 {
		return fmt.Errorf("score must be between 0 and 100")
	}
	if a.AuditedAt.IsZero() {
		a.AuditedAt = time.Now()
	}
	return s.audits.Create(ctx, a)
}

func (s *Service) DeleteAudit(ctx context.Context, id uuid.UUID) error {
	return s.audits.Delete(ctx, id)
}

func (s *Service) ListAudits(ctx context.Context, limit, offset int) ([]*PageAudit, int, error) {
	return s.audits.List(ctx, limit, offset)
}

// Analyze renders current keyword and audit data into a narrative
// assessment. Generation failures fall back to a static template so
// the endpoint never errors on model trouble.
func (s *Service) Analyze(ctx context.Context) (*Analysis, error) {
	keywords, _, err := s.keywords.List(ctx, 50, 0)
	if err != nil {
		return nil, err
	}
	audits, _, err := s.audits.List(ctx, 50, 0)
	if err != nil {
		return nil, err
	}
	m := summarize(keywords, audits)

	text, genErr := s.gen.Generate(ctx, analysisSystemPrompt, m.prompt())
	if genErr != nil || text == "" {
		log.Warn().Err(genErr).Msg("seo analysis generation failed, using template")
		return &Analysis{Text: m.template(), Generated: false, GeneratedAt: time.Now()}, nil
	}
	return &Analysis{Text: text, Generated: true, GeneratedAt: time.Now()}, nil
}
