package services

import (
	"math"

	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/repositories"
)

// DashboardService aggregates a user's progress across resume analyses and
// mock interviews.
type DashboardService interface {
	Summary(username string) (*models.DashboardResponse, error)
}

type dashboardService struct {
	analysisRepo  repositories.AnalysisRepository
	interviewRepo repositories.InterviewRepository
}

func NewDashboardService(
	analysisRepo repositories.AnalysisRepository,
	interviewRepo repositories.InterviewRepository,
) DashboardService {
	return &dashboardService{
		analysisRepo:  analysisRepo,
		interviewRepo: interviewRepo,
	}
}

func (s *dashboardService) Summary(username string) (*models.DashboardResponse, error) {
	summary := &models.DashboardResponse{Username: username}

	latest, err := s.analysisRepo.FindLatestByUsername(username)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		summary.LatestResumeScore = &latest.TargetScore
	}

	avg, err := s.interviewRepo.AverageRating(username)
	if err != nil {
		return nil, err
	}
	if avg != nil {
		rounded := math.Round(*avg*10) / 10
		summary.AvgInterviewRating = &rounded
	}

	resumeCount, err := s.analysisRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	summary.ResumeAttempts = resumeCount

	interviewCount, err := s.interviewRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	summary.InterviewAnswers = interviewCount

	return summary, nil
}
