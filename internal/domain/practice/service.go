package practice

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

type Service struct {
	practices Repository
	settings  SettingsRepository
}

func NewService(practices Repository, settings SettingsRepository) *Service {
	return &Service{practices: practices, settings: settings}
}

func (s *Service) Create(ctx context.Context, p *Practice) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("invalid slug: %s", p.Slug)
	}
	return s.practices.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Practice, error) {
	return s.practices.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Practice, error) {
	return s.practices.GetBySlug(ctx, slug)
}

func (s *Service) Update(ctx context.Context, p *Practice) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.practices.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.practices.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Practice, int, error) {
	return s.practices.List(ctx, limit, offset)
}

// GetSettings returns the practice's feature settings, falling back to
// defaults when no row exists.
func (s *Service) GetSettings(ctx context.Context, practiceID uuid.UUID) (*Settings, error) {
	return s.settings.Get(ctx, practiceID)
}

func (s *Service) UpdateSettings(ctx context.Context, set *Settings) error {
	if set.PracticeID == uuid.Nil {
		return fmt.Errorf("practice_id is required")
	}
	if set.Locale == "" {
		set.Locale = "de"
	}
	return s.settings.Upsert(ctx, set)
}
