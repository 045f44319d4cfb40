package insight

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnusableReport marks generated output that cannot serve as an
// InsightReport. It routes the request onto the fallback path.
var ErrUnusableReport = errors.New("generated output unusable as report")

// extractJSON returns the first balanced {...} object in text. Models
// often wrap the JSON in prose or code fences; everything outside the
// braces is ignored.
func extractJSON(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i, r := range text {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return text[start : i+1], nil
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", fmt.Errorf("%w: no balanced JSON object found", ErrUnusableReport)
}

// parseReport decodes generated text into a report and enforces the
// schema invariants: clamped scores, non-empty summary, and exactly
// the fixed category key set.
func parseReport(text string) (*InsightReport, error) {
	blob, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	var report InsightReport
	if err := json.Unmarshal([]byte(blob), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnusableReport, err)
	}
	if report.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrUnusableReport)
	}
	if report.Categories == nil {
		return nil, fmt.Errorf("%w: missing categories", ErrUnusableReport)
	}
	for _, key := range CategoryKeys {
		if _, ok := report.Categories[key]; !ok {
			return nil, fmt.Errorf("%w: missing category %q", ErrUnusableReport, key)
		}
	}
	// Drop anything outside the fixed key set and clamp all scores.
	for key := range report.Categories {
		known := false
		for _, k := range CategoryKeys {
			if key == k {
				known = true
				break
			}
		}
		if !known {
			delete(report.Categories, key)
			continue
		}
		c := report.Categories[key]
		c.Score = clampScore(c.Score)
		report.Categories[key] = c
	}
	report.OverallScore = clampScore(report.OverallScore)
	return &report, nil
}
