package insight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/praxis/praxis/internal/domain/practice"
	"github.com/praxis/praxis/internal/platform/auth"
)

type caller struct {
	userID     string
	practiceID string
	role       string
}

func doAnalyze(t *testing.T, svc *Service, body string, who *caller) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/insights/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if who != nil {
		ctx := req.Context()
		ctx = context.WithValue(ctx, auth.UserIDKey, who.userID)
		ctx = context.WithValue(ctx, auth.UserRoleKey, who.role)
		ctx = context.WithValue(ctx, auth.PracticeIDKey, who.practiceID)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, NewHandler(svc).Analyze(c)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAnalyzeHandlerStatusTaxonomy(t *testing.T) {
	practiceID := uuid.New()
	otherID := uuid.NewString()

	okBody := `{"practiceId":"` + practiceID.String() + `"}`
	owner := &caller{userID: "u1", practiceID: practiceID.String(), role: auth.RoleOwner}

	t.Run("unauthenticated is 401", func(t *testing.T) {
		svc := NewService(emptyRepos(practiceID), stubGenerator{}, nil)
		_, err := doAnalyze(t, svc, okBody, nil)
		if got := httpStatus(t, err); got != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", got)
		}
	})

	t.Run("missing practice id is 400", func(t *testing.T) {
		svc := NewService(emptyRepos(practiceID), stubGenerator{}, nil)
		_, err := doAnalyze(t, svc, `{}`, owner)
		if got := httpStatus(t, err); got != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", got)
		}
	})

	t.Run("foreign practice is 403", func(t *testing.T) {
		svc := NewService(emptyRepos(practiceID), stubGenerator{}, nil)
		_, err := doAnalyze(t, svc, `{"practiceId":"`+otherID+`"}`, owner)
		if got := httpStatus(t, err); got != http.StatusForbidden {
			t.Errorf("status = %d, want 403", got)
		}
	})

	t.Run("feature disabled is 403", func(t *testing.T) {
		repos := emptyRepos(practiceID)
		repos.Settings = stubSettings{s: &practice.Settings{PracticeID: practiceID}}
		svc := NewService(repos, stubGenerator{}, nil)
		_, err := doAnalyze(t, svc, okBody, owner)
		if got := httpStatus(t, err); got != http.StatusForbidden {
			t.Errorf("status = %d, want 403", got)
		}
	})

	t.Run("settings outage is 503", func(t *testing.T) {
		repos := emptyRepos(practiceID)
		repos.Settings = stubSettings{err: errors.New("pool exhausted")}
		svc := NewService(repos, stubGenerator{}, nil)
		_, err := doAnalyze(t, svc, okBody, owner)
		if got := httpStatus(t, err); got != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", got)
		}
	})

	t.Run("authorized call is 200 even when generation fails", func(t *testing.T) {
		svc := NewService(emptyRepos(practiceID), stubGenerator{err: errors.New("api down")}, nil)
		rec, err := doAnalyze(t, svc, okBody, owner)
		if err != nil {
			t.Fatalf("handler error = %v, want none", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var report InsightReport
		if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
			t.Fatalf("response not an InsightReport: %v", err)
		}
		if report.OverallScore != 30 {
			t.Errorf("fallback score = %d, want 30", report.OverallScore)
		}
		if len(report.Categories) != len(CategoryKeys) {
			t.Errorf("categories = %d, want %d", len(report.Categories), len(CategoryKeys))
		}
	})
}
