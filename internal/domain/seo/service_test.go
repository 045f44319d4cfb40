package seo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockKeywords struct {
	items []*KeywordSnapshot
	err   error
}

func (m *mockKeywords) Create(_ context.Context, k *KeywordSnapshot) error {
	m.items = append(m.items, k)
	return nil
}
func (m *mockKeywords) Delete(_ context.Context, id uuid.UUID) error { return nil }
func (m *mockKeywords) List(_ context.Context, limit, offset int) ([]*KeywordSnapshot, int, error) {
	return m.items, len(m.items), m.err
}

type mockAudits struct {
	items []*PageAudit
	err   error
}

func (m *mockAudits) Create(_ context.Context, a *PageAudit) error {
	m.items = append(m.items, a)
	return nil
}
func (m *mockAudits) Delete(_ context.Context, id uuid.UUID) error { return nil }
func (m *mockAudits) List(_ context.Context, limit, offset int) ([]*PageAudit, int, error) {
	return m.items, len(m.items), m.err
}

type fakeGen struct {
	text string
	err  error
}

func (g fakeGen) Generate(context.Context, string, string) (string, error) {
	return g.text, g.err
}

func TestCreateKeywordValidation(t *testing.T) {
	svc := NewService(&mockKeywords{}, &mockAudits{}, fakeGen{})

	if err := svc.CreateKeyword(context.Background(), &KeywordSnapshot{Position: 3}); err == nil {
		t.Error("empty keyword accepted")
	}
	if err := svc.CreateKeyword(context.Background(), &KeywordSnapshot{Keyword: "zahnarzt", Position: 0}); err == nil {
		t.Error("position 0 accepted")
	}

	k := &KeywordSnapshot{Keyword: "zahnarzt münster", Position: 4}
	if err := svc.CreateKeyword(context.Background(), k); err != nil {
		t.Fatalf("CreateKeyword() = %v", err)
	}
	if k.CapturedAt.IsZero() {
		t.Error("CapturedAt not defaulted")
	}
}

func TestCreateAuditValidation(t *testing.T) {
	svc := NewService(&mockKeywords{}, &mockAudits{}, fakeGen{})

	if err := svc.CreateAudit(context.Background(), &PageAudit{Score: 50}); err == nil {
		t.Error("empty url accepted")
	}
	if err := svc.CreateAudit(context.Background(), &PageAudit{URL: "https://p.example", Score: 101}); err == nil {
		t.Error("score above 100 accepted")
	}
	if err := svc.CreateAudit(context.Background(), &PageAudit{URL: "https://p.example", Score: 88}); err != nil {
		t.Errorf("CreateAudit() = %v", err)
	}
}

func TestAnalyzeUsesGeneratedText(t *testing.T) {
	keywords := &mockKeywords{items: []*KeywordSnapshot{
		{Keyword: "zahnarzt", Position: 3, SearchVolume: 900, CapturedAt: time.Now()},
	}}
	audits := &mockAudits{items: []*PageAudit{
		{URL: "https://p.example/", Score: 85, Issues: 2, AuditedAt: time.Now()},
	}}
	svc := NewService(keywords, audits, fakeGen{text: "Your rankings are solid."})

	a, err := svc.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze() = %v", err)
	}
	if !a.Generated {
		t.Error("Generated = false, want true")
	}
	if a.Text != "Your rankings are solid." {
		t.Errorf("Text = %q", a.Text)
	}
}

func TestAnalyzeFallsBackToTemplate(t *testing.T) {
	keywords := &mockKeywords{items: []*KeywordSnapshot{
		{Keyword: "zahnarzt", Position: 3, CapturedAt: time.Now()},
	}}
	svc := NewService(keywords, &mockAudits{}, fakeGen{err: errors.New("api down")})

	a, err := svc.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze() must not error on generation failure: %v", err)
	}
	if a.Generated {
		t.Error("Generated = true, want false on fallback")
	}
	if a.Text == "" {
		t.Error("template fallback produced empty text")
	}
}

func TestAnalyzeEmptyModelOutputFallsBack(t *testing.T) {
	svc := NewService(&mockKeywords{}, &mockAudits{}, fakeGen{text: ""})

	a, err := svc.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze() = %v", err)
	}
	if a.Generated {
		t.Error("empty output must route to the template")
	}
}

func TestAnalyzeSurfacesReadErrors(t *testing.T) {
	svc := NewService(&mockKeywords{err: fmt.Errorf("timeout")}, &mockAudits{}, fakeGen{})
	if _, err := svc.Analyze(context.Background()); err == nil {
		t.Error("keyword read failure swallowed")
	}
}
