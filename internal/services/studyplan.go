package services

import (
	"fmt"
	"strings"

	"prepvault/resume-analyzer/internal/repositories"
)

// StudyPlanService derives learning suggestions from the missing keywords of
// a user's most recent analysis attempt.
type StudyPlanService interface {
	BuildPlan(username string) (*StudyPlan, error)
}

// StudyPlan is the derived plan. HasAnalysis is false when the user has never
// run an analysis; Items is empty when the latest attempt had no gaps.
type StudyPlan struct {
	HasAnalysis     bool     `json:"has_analysis"`
	TargetRole      string   `json:"target_role,omitempty"`
	MissingKeywords []string `json:"missing_keywords"`
	Items           []string `json:"items"`
}

type studyPlanService struct {
	analysisRepo repositories.AnalysisRepository
}

func NewStudyPlanService(analysisRepo repositories.AnalysisRepository) StudyPlanService {
	return &studyPlanService{analysisRepo: analysisRepo}
}

func (s *studyPlanService) BuildPlan(username string) (*StudyPlan, error) {
	latest, err := s.analysisRepo.FindLatestByUsername(username)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &StudyPlan{HasAnalysis: false, MissingKeywords: []string{}, Items: []string{}}, nil
	}

	missing := latest.MissingKeywordList()
	return &StudyPlan{
		HasAnalysis:     true,
		TargetRole:      latest.TargetRole,
		MissingKeywords: missing,
		Items:           GeneratePlanItems(missing),
	}, nil
}

// GeneratePlanItems maps each missing keyword to a study suggestion, one item
// per keyword in order.
func GeneratePlanItems(missingKeywords []string) []string {
	items := []string{}
	for _, keyword := range missingKeywords {
		kw := strings.ToLower(keyword)
		switch {
		case strings.Contains(kw, "excel"):
			items = append(items, "Take a Microsoft Excel course (pivot tables, formulas, charts).")
		case strings.Contains(kw, "sql"):
			items = append(items, "Practice SQL queries on platforms like LeetCode or SQLBolt.")
		case strings.Contains(kw, "python"):
			items = append(items, "Complete a beginner-to-intermediate Python course.")
		case strings.Contains(kw, "communication"):
			items = append(items, "Join a public speaking or communication skills workshop.")
		case strings.Contains(kw, "power bi"):
			items = append(items, "Build dashboards in Power BI using sample datasets.")
		case strings.Contains(kw, "data analysis"):
			items = append(items, "Enroll in a course on data wrangling, EDA, and visualization.")
		default:
			items = append(items, fmt.Sprintf("Research and build competence in %s.", keyword))
		}
	}
	return items
}
