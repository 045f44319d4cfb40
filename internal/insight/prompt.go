package insight

import (
	"fmt"
	"sort"
	"strings"
)

const systemPrompt = `You are a management consultant for medical practices. ` +
	`You assess practice organization, finances, team structure and patient ` +
	`satisfaction from the data you are given. You answer with a single JSON ` +
	`object and nothing else.`

// judge maps a percentage metric onto a qualitative band for the
// prompt text. The bands are presentation only; the scoring rubric at
// the end of the prompt is the contractual part.
func judge(pct float64) string {
	switch {
	case pct > 85:
		return "very good"
	case pct > 70:
		return "good"
	case pct > 50:
		return "medium"
	default:
		return "needs improvement"
	}
}

func pc(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// buildPrompt renders the snapshot into the analysis document. The
// benchmark block is included only when the tenant opted into
// analytics sharing.
func buildPrompt(s Snapshot, benchmark string) string {
	var b strings.Builder

	b.WriteString("# Practice analysis data\n\n")

	b.WriteString("## General\n")
	fmt.Fprintf(&b, "Practice: %s\n", s.PracticeName)
	if s.Specialty != "" {
		fmt.Fprintf(&b, "Specialty: %s\n", s.Specialty)
	}
	if s.City != "" {
		fmt.Fprintf(&b, "Location: %s\n", s.City)
	}
	if s.FoundedYear > 0 {
		fmt.Fprintf(&b, "Founded: %d\n", s.FoundedYear)
	}

	b.WriteString("\n## Finance\n")
	fmt.Fprintf(&b, "Transactions recorded: %d\n", s.TotalTransactions)
	fmt.Fprintf(&b, "Income: %.2f EUR, expenses: %.2f EUR\n",
		float64(s.IncomeCents)/100, float64(s.ExpenseCents)/100)
	fmt.Fprintf(&b, "Categorization rate: %s (%s)\n", pc(s.CategorizationRate), judge(s.CategorizationRate))
	writeDistribution(&b, "Expense categories", s.ExpenseCategories)

	b.WriteString("\n## Support\n")
	fmt.Fprintf(&b, "Tickets: %d total, %d open, %d resolved\n", s.TotalTickets, s.OpenTickets, s.ResolvedTickets)
	fmt.Fprintf(&b, "Resolution rate: %s (%s)\n", pc(s.TicketResolutionRate), judge(s.TicketResolutionRate))
	writeDistribution(&b, "Ticket categories", s.TicketCategories)

	b.WriteString("\n## Patient ratings\n")
	fmt.Fprintf(&b, "Ratings: %d total, %d in the last 30 days\n", s.TotalRatings, s.RecentRatings)
	fmt.Fprintf(&b, "Average rating: %.1f of 5\n", s.AverageRating)

	b.WriteString("\n## Team\n")
	fmt.Fprintf(&b, "Members: %d total, %d active, %.1f FTE\n", s.TeamSize, s.ActiveMembers, s.TotalFTE)
	writeDistribution(&b, "Roles", s.RoleCounts)
	fmt.Fprintf(&b, "Skills tracked: %d, assignments: %d, average level %.1f of 5\n",
		s.SkillCount, s.AssignmentCount, s.AvgSkillLevel)
	fmt.Fprintf(&b, "Holiday requests: %d pending, %d approved\n",
		s.PendingHolidayRequests, s.ApprovedHolidayRequests)

	b.WriteString("\n## Organization\n")
	fmt.Fprintf(&b, "Positions: %d defined, %d vacant\n", s.TotalPositions, s.VacantPositions)
	fmt.Fprintf(&b, "Responsibilities assigned: %d\n", s.ResponsibilityCount)
	fmt.Fprintf(&b, "Hygiene plans: %d, overdue: %d\n", s.HygienePlans, s.OverdueHygienePlans)

	b.WriteString("\n## Goals and todos\n")
	fmt.Fprintf(&b, "Goals: %d total, %d active, %d completed, %d overdue\n",
		s.TotalGoals, s.ActiveGoals, s.CompletedGoals, s.OverdueGoals)
	fmt.Fprintf(&b, "Completion rate: %s (%s), average progress %.1f%%\n",
		pc(s.GoalCompletionRate), judge(s.GoalCompletionRate), s.AvgGoalProgress)
	fmt.Fprintf(&b, "Todos: %d total, %d done, completion %s\n",
		s.TotalTodos, s.DoneTodos, pc(s.TodoCompletionRate))

	b.WriteString("\n## Workflows\n")
	fmt.Fprintf(&b, "Workflows: %d total, %d active, %d blocked\n",
		s.TotalWorkflows, s.ActiveWorkflows, s.BlockedWorkflows)
	fmt.Fprintf(&b, "Average progress: %.1f%%, templates available: %d\n",
		s.AvgWorkflowProgress, s.TemplateCount)

	b.WriteString("\n## Recruiting\n")
	fmt.Fprintf(&b, "Open postings: %d\n", s.OpenPostings)
	fmt.Fprintf(&b, "Applicants: %d total, %d in pipeline, %d hired\n",
		s.TotalApplicants, s.PipelineActive, s.HiredApplicants)

	b.WriteString("\n## Documents and forms\n")
	fmt.Fprintf(&b, "Documents: %d\n", s.TotalDocuments)
	writeDistribution(&b, "Document categories", s.DocumentCategories)
	fmt.Fprintf(&b, "Forms: %d total, %d published\n", s.TotalForms, s.PublishedForms)

	b.WriteString("\n## Online presence\n")
	fmt.Fprintf(&b, "SEO keywords tracked: %d, average position %.1f\n", s.KeywordCount, s.AvgKeywordPosition)
	fmt.Fprintf(&b, "Page audits: %d, average score %.0f/100\n", s.AuditCount, s.AvgAuditScore)

	b.WriteString("\n## Communications and system\n")
	fmt.Fprintf(&b, "Email accounts: %d configured, %d active\n", s.EmailAccounts, s.ActiveEmailAccounts)
	fmt.Fprintf(&b, "System changes in the last 30 days: %d\n", s.ChangesLast30Days)

	if benchmark != "" {
		b.WriteString("\n## Anonymized benchmark context\n")
		b.WriteString(benchmark)
		b.WriteString("\n")
	}

	b.WriteString("\n" + outputContract)
	return b.String()
}

// writeDistribution emits the buckets in sorted key order so the same
// snapshot always renders the same prompt text.
func writeDistribution(b *strings.Builder, label string, dist map[string]int) {
	if len(dist) == 0 {
		return
	}
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(b, "%s:", label)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%d", k, dist[k])
	}
	b.WriteString("\n")
}

// outputContract fixes the response schema and the six-band rubric.
// The category key list must match CategoryKeys exactly.
const outputContract = `## Output contract

Respond with exactly one JSON object, no surrounding text:

{
  "overallScore": <0-100>,
  "summary": "<2-3 sentence overall assessment>",
  "insights": [
    {"type": "success|warning|improvement", "category": "<category>", "title": "...", "description": "...", "metric": "<optional metric>"}
  ],
  "recommendations": ["...", "..."],
  "categories": {
    "team": {"score": <0-100>, "findings": ["..."], "recommendations": ["..."]},
    "goals": {...}, "workflows": {...}, "documents": {...}, "knowledge": {...},
    "finance": {...}, "support": {...}, "ratings": {...},
    "organization": {...}, "recruiting": {...}
  }
}

All ten category keys (team, goals, workflows, documents, knowledge, finance,
support, ratings, organization, recruiting) are required.

Grading rubric for overallScore:
- 90-100: excellent
- 80-89: very good
- 70-79: good
- 60-69: satisfactory
- 50-59: adequate
- below 50: insufficient`
