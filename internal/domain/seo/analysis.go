package seo

import (
	"fmt"
	"sort"
	"strings"
)

const analysisSystemPrompt = `You are an SEO consultant for medical practices. ` +
	`Write a short assessment in plain prose. Be specific about the numbers ` +
	`you are given and suggest at most three concrete actions.`

// metrics is the aggregate view the analysis prompt is built from.
type metrics struct {
	keywordCount int
	avgPosition  float64
	topKeywords  []*KeywordSnapshot
	auditCount   int
	avgScore     float64
	totalIssues  int
}

func summarize(keywords []*KeywordSnapshot, audits []*PageAudit) metrics {
	var m metrics
	m.keywordCount = len(keywords)
	if len(keywords) > 0 {
		sum := 0
		for _, k := range keywords {
			sum += k.Position
		}
		m.avgPosition = float64(sum) / float64(len(keywords))
		sorted := make([]*KeywordSnapshot, len(keywords))
		copy(sorted, keywords)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
		n := 5
		if len(sorted) < n {
			n = len(sorted)
		}
		m.topKeywords = sorted[:n]
	}
	m.auditCount = len(audits)
	if len(audits) > 0 {
		sum := 0
		for _, a := range audits {
			sum += a.Score
			m.totalIssues += a.Issues
		}
		m.avgScore = float64(sum) / float64(len(audits))
	}
	return m
}

func (m metrics) prompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tracked keywords: %d, average position %.1f\n", m.keywordCount, m.avgPosition)
	if len(m.topKeywords) > 0 {
		b.WriteString("Best ranking keywords:\n")
		for _, k := range m.topKeywords {
			fmt.Fprintf(&b, "- %q at position %d (volume %d)\n", k.Keyword, k.Position, k.SearchVolume)
		}
	}
	fmt.Fprintf(&b, "Page audits: %d, average score %.0f/100, open issues %d\n",
		m.auditCount, m.avgScore, m.totalIssues)
	return b.String()
}

// template is the deterministic fallback when generation is
// unavailable. It restates the same numbers the prompt carries.
func (m metrics) template() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SEO summary: %d keywords tracked", m.keywordCount)
	if m.keywordCount > 0 {
		fmt.Fprintf(&b, " with an average position of %.1f", m.avgPosition)
	}
	b.WriteString(". ")
	if m.auditCount > 0 {
		fmt.Fprintf(&b, "%d pages audited with an average score of %.0f/100 and %d open issues. ",
			m.auditCount, m.avgScore, m.totalIssues)
	}
	if m.avgScore > 0 && m.avgScore < 70 {
		b.WriteString("Page quality is below target; prioritize fixing audit issues. ")
	}
	if m.keywordCount == 0 {
		b.WriteString("No keyword data yet; add keywords to start tracking rankings.")
	}
	return strings.TrimSpace(b.String())
}
