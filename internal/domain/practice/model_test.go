package practice

import (
	"testing"

	"github.com/google/uuid"
)

func TestDefaultSettings(t *testing.T) {
	id := uuid.New()
	s := DefaultSettings(id)

	if s.PracticeID != id {
		t.Errorf("PracticeID = %v, want %v", s.PracticeID, id)
	}
	if !s.AIEnabled {
		t.Error("AI analysis must be enabled for a practice without a settings row")
	}
	if s.AnalyticsSharing {
		t.Error("analytics sharing is opt-in, must default to false")
	}
	if s.Locale != "de-DE" {
		t.Errorf("Locale = %q, want de-DE", s.Locale)
	}
}
