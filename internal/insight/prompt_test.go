package insight

import (
	"strings"
	"testing"
)

func TestJudgeBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "very good"},
		{86, "very good"},
		{85, "good"},
		{71, "good"},
		{70, "medium"},
		{51, "medium"},
		{50, "needs improvement"},
		{0, "needs improvement"},
	}
	for _, tt := range tests {
		if got := judge(tt.pct); got != tt.want {
			t.Errorf("judge(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestBuildPromptSections(t *testing.T) {
	s := Snapshot{
		PracticeName:       "Praxis Dr. Weber",
		Specialty:          "orthodontics",
		TeamSize:           5,
		TotalGoals:         3,
		GoalCompletionRate: 66.7,
	}
	p := buildPrompt(s, "")

	for _, section := range []string{
		"## General", "## Finance", "## Support", "## Patient ratings",
		"## Team", "## Organization", "## Goals and todos", "## Workflows",
		"## Recruiting", "## Documents and forms", "## Online presence",
		"## Communications and system", "## Output contract",
	} {
		if !strings.Contains(p, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
	if !strings.Contains(p, "Praxis Dr. Weber") {
		t.Error("prompt missing practice name")
	}
	if strings.Contains(p, "Anonymized benchmark context") {
		t.Error("benchmark section present without benchmark data")
	}
}

func TestBuildPromptBenchmark(t *testing.T) {
	p := buildPrompt(Snapshot{PracticeName: "P"}, "peers average 4.1 stars")
	if !strings.Contains(p, "## Anonymized benchmark context") {
		t.Error("benchmark section missing")
	}
	if !strings.Contains(p, "peers average 4.1 stars") {
		t.Error("benchmark text missing")
	}
}

func TestBuildPromptStableText(t *testing.T) {
	s := Snapshot{
		PracticeName:       "Praxis Dr. Weber",
		ExpenseCategories:  map[string]int{"Rent": 1, "Materials": 2, "Lab": 3},
		TicketCategories:   map[string]int{"it": 4, "billing": 2, "Unassigned": 1},
		RoleCounts:         map[string]int{"dentist": 1, "assistant": 3},
		DocumentCategories: map[string]int{"contracts": 5, "protocols": 2},
	}

	first := buildPrompt(s, "")
	for i := 0; i < 20; i++ {
		if buildPrompt(s, "") != first {
			t.Fatal("prompt text varies across runs for identical input")
		}
	}
	if !strings.Contains(first, "Expense categories: Lab=3 Materials=2 Rent=1") {
		t.Error("distribution buckets not emitted in sorted key order")
	}
	if !strings.Contains(first, "Roles: assistant=3 dentist=1") {
		t.Error("role buckets not emitted in sorted key order")
	}
}

func TestOutputContractNamesAllCategories(t *testing.T) {
	for _, k := range CategoryKeys {
		if !strings.Contains(outputContract, `"`+k+`"`) && !strings.Contains(outputContract, k) {
			t.Errorf("output contract does not mention category %q", k)
		}
	}
}
