package insight

import (
	"fmt"
	"time"
)

// fallbackReport scores the snapshot with a fixed additive point table.
// It is pure and deterministic: the same snapshot always yields the
// same report, independent of any external service.
func fallbackReport(s Snapshot, now time.Time) *InsightReport {
	score := 30 // baseline for an active account

	// Team presence and size, max +15.
	if s.TeamSize > 0 {
		score += 5
		if s.TeamSize >= 3 {
			score += 5
		}
		if s.TeamSize >= 10 {
			score += 5
		}
	}

	// Goals, max +15.
	if s.TotalGoals > 0 {
		score += 5
		if s.GoalCompletionRate > 50 {
			score += 5
		}
		if s.TotalGoals >= 5 && s.GoalCompletionRate > 70 {
			score += 5
		}
	}

	// Workflows, max +10.
	if s.TotalWorkflows > 0 {
		score += 5
		if s.TotalWorkflows >= 3 {
			score += 5
		}
	}

	// Org structure, max +10.
	if s.TotalPositions > 0 {
		score += 5
		if s.VacantPositions == 0 {
			score += 5
		}
	}

	// Documentation, max +10.
	if s.TotalDocuments > 0 {
		score += 5
		if s.TotalDocuments >= 10 {
			score += 5
		}
	}

	// Finance tracking, max +5.
	if s.TotalTransactions > 0 {
		score += 3
		if s.CategorizationRate > 50 {
			score += 2
		}
	}

	// Patient satisfaction, max +5.
	if s.TotalRatings > 0 {
		score += 3
		if s.AverageRating >= 4.0 {
			score += 2
		}
	}

	// Deductions.
	score -= minInt(5, s.OverdueGoals*2)
	score -= minInt(5, maxInt(0, s.VacantPositions-3)*2)
	score -= minInt(5, s.BlockedWorkflows*3)

	score = clampScore(score)

	report := &InsightReport{
		OverallScore: score,
		Summary: fmt.Sprintf(
			"Automated assessment: %d team members, %d goals (%.1f%% completed), %d workflows, %d documents. Overall organization score: %d/100.",
			s.TeamSize, s.TotalGoals, s.GoalCompletionRate, s.TotalWorkflows, s.TotalDocuments, score),
		Insights:        fallbackInsights(s),
		Recommendations: fallbackRecommendations(s),
		Categories:      fallbackCategories(s),
		GeneratedAt:     now,
	}
	return report
}

func fallbackInsights(s Snapshot) []Insight {
	var out []Insight
	if s.ActiveMembers > 0 {
		out = append(out, Insight{
			Type: TypeSuccess, Category: "team",
			Title:       "Active team",
			Description: fmt.Sprintf("%d active team members covering %.1f FTE.", s.ActiveMembers, s.TotalFTE),
			Metric:      fmt.Sprintf("%d", s.ActiveMembers),
		})
	}
	if s.OverdueGoals > 0 {
		out = append(out, Insight{
			Type: TypeWarning, Category: "goals",
			Title:       "Overdue goals",
			Description: fmt.Sprintf("%d goals are past their due date.", s.OverdueGoals),
			Metric:      fmt.Sprintf("%d", s.OverdueGoals),
		})
	}
	if s.BlockedWorkflows > 0 {
		out = append(out, Insight{
			Type: TypeWarning, Category: "workflows",
			Title:       "Blocked workflows",
			Description: fmt.Sprintf("%d workflows are blocked and need attention.", s.BlockedWorkflows),
			Metric:      fmt.Sprintf("%d", s.BlockedWorkflows),
		})
	}
	if s.VacantPositions > 0 {
		out = append(out, Insight{
			Type: TypeImprovement, Category: "organization",
			Title:       "Vacant positions",
			Description: fmt.Sprintf("%d of %d positions are unfilled.", s.VacantPositions, s.TotalPositions),
			Metric:      fmt.Sprintf("%d", s.VacantPositions),
		})
	}
	if s.TotalRatings > 0 && s.AverageRating >= 4.0 {
		out = append(out, Insight{
			Type: TypeSuccess, Category: "ratings",
			Title:       "High patient satisfaction",
			Description: fmt.Sprintf("Average rating of %.1f across %d reviews.", s.AverageRating, s.TotalRatings),
			Metric:      fmt.Sprintf("%.1f", s.AverageRating),
		})
	}
	return out
}

func fallbackRecommendations(s Snapshot) []string {
	var out []string
	if s.TotalGoals == 0 {
		out = append(out, "Define practice goals to make progress measurable.")
	}
	if s.OverdueGoals > 0 {
		out = append(out, fmt.Sprintf("Review the %d overdue goals and reschedule or archive them.", s.OverdueGoals))
	}
	if s.TotalWorkflows == 0 {
		out = append(out, "Document recurring procedures as workflows.")
	}
	if s.TotalDocuments < 10 {
		out = append(out, "Build up the document library; fewer than 10 documents are stored.")
	}
	if s.CategorizationRate <= 50 && s.TotalTransactions > 0 {
		out = append(out, fmt.Sprintf("Categorize transactions (currently %.1f%%) to improve financial overview.", s.CategorizationRate))
	}
	if len(out) == 0 {
		out = append(out, "Keep data current to maintain the practice overview.")
	}
	return out
}

// fallbackCategories derives one sub-score per fixed category from
// simple thresholds. All sub-scores are clamped to [0,100].
func fallbackCategories(s Snapshot) map[string]CategoryScore {
	cats := make(map[string]CategoryScore, len(CategoryKeys))

	teamScore := 50
	if s.ActiveMembers > 0 {
		teamScore = 75
	}
	cats["team"] = category(teamScore,
		fmt.Sprintf("%d members, %d active", s.TeamSize, s.ActiveMembers),
		recommendIf(s.TeamSize == 0, "Add team members to the practice."))

	goalScore := 50
	if s.TotalGoals > 0 {
		goalScore = 60
		if s.GoalCompletionRate > 50 {
			goalScore = 75
		}
		if s.GoalCompletionRate > 70 {
			goalScore = 85
		}
	}
	goalScore -= s.OverdueGoals * 5
	cats["goals"] = category(goalScore,
		fmt.Sprintf("%d goals, %.1f%% completed, %d overdue", s.TotalGoals, s.GoalCompletionRate, s.OverdueGoals),
		recommendIf(s.OverdueGoals > 0, "Address overdue goals."))

	wfScore := 50
	if s.TotalWorkflows > 0 {
		wfScore = 70
		if s.TotalWorkflows >= 3 && s.BlockedWorkflows == 0 {
			wfScore = 80
		}
	}
	cats["workflows"] = category(wfScore,
		fmt.Sprintf("%d workflows, %d blocked", s.TotalWorkflows, s.BlockedWorkflows),
		recommendIf(s.BlockedWorkflows > 0, "Unblock stalled workflows."))

	docScore := 50
	if s.TotalDocuments > 0 {
		docScore = 65
		if s.TotalDocuments >= 10 {
			docScore = 80
		}
	}
	cats["documents"] = category(docScore,
		fmt.Sprintf("%d documents stored", s.TotalDocuments),
		recommendIf(s.TotalDocuments < 10, "Expand the document library."))

	knowScore := 50
	if s.SkillCount > 0 && s.AssignmentCount > 0 {
		knowScore = 70
		if s.AvgSkillLevel >= 3.5 {
			knowScore = 80
		}
	}
	cats["knowledge"] = category(knowScore,
		fmt.Sprintf("%d skills, %d assignments, average level %.1f", s.SkillCount, s.AssignmentCount, s.AvgSkillLevel),
		recommendIf(s.SkillCount == 0, "Track team skills to surface training needs."))

	finScore := 50
	if s.TotalTransactions > 0 {
		finScore = 65
		if s.CategorizationRate > 50 {
			finScore = 75
		}
	}
	cats["finance"] = category(finScore,
		fmt.Sprintf("%d transactions, %.1f%% categorized", s.TotalTransactions, s.CategorizationRate),
		recommendIf(s.CategorizationRate <= 50, "Categorize transactions consistently."))

	supScore := 60
	if s.TotalTickets > 0 {
		if s.TicketResolutionRate > 70 {
			supScore = 80
		} else if s.TicketResolutionRate > 50 {
			supScore = 70
		} else {
			supScore = 55
		}
	}
	cats["support"] = category(supScore,
		fmt.Sprintf("%d tickets, %.1f%% resolved", s.TotalTickets, s.TicketResolutionRate),
		recommendIf(s.OpenTickets > 5, "Work down the open ticket backlog."))

	ratScore := 50
	if s.TotalRatings > 0 {
		ratScore = 60
		if s.AverageRating >= 4.0 {
			ratScore = 85
		} else if s.AverageRating >= 3.0 {
			ratScore = 70
		}
	}
	cats["ratings"] = category(ratScore,
		fmt.Sprintf("%d ratings, average %.1f", s.TotalRatings, s.AverageRating),
		recommendIf(s.TotalRatings == 0, "Collect patient feedback."))

	orgScore := 50
	if s.TotalPositions > 0 {
		orgScore = 70
		if s.VacantPositions == 0 {
			orgScore = 80
		}
	}
	cats["organization"] = category(orgScore,
		fmt.Sprintf("%d positions, %d vacant, %d responsibilities", s.TotalPositions, s.VacantPositions, s.ResponsibilityCount),
		recommendIf(s.VacantPositions > 0, "Fill vacant positions or adjust the org chart."))

	recScore := 60
	if s.OpenPostings > 0 && s.PipelineActive > 0 {
		recScore = 75
	}
	cats["recruiting"] = category(recScore,
		fmt.Sprintf("%d open postings, %d applicants in pipeline", s.OpenPostings, s.PipelineActive),
		recommendIf(s.OpenPostings > 0 && s.TotalApplicants == 0, "Promote open postings to attract applicants."))

	return cats
}

func category(score int, finding string, recs []string) CategoryScore {
	return CategoryScore{
		Score:           clampScore(score),
		Findings:        []string{finding},
		Recommendations: recs,
	}
}

func recommendIf(cond bool, text string) []string {
	if cond {
		return []string{text}
	}
	return []string{}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
