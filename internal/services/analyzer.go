package services

import (
	"context"
	"fmt"
	"time"

	"prepvault/resume-analyzer/internal/catalog"
	"prepvault/resume-analyzer/internal/logger"
	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/repositories"
)

// AnalyzeInput identifies one analysis run: whose resume, against which
// catalogue role, and where the uploaded document landed on disk.
type AnalyzeInput struct {
	Username         string
	TargetRole       string
	FilePath         string
	OriginalFilename string
}

// AnalyzerService runs the full evaluation pipeline: extract text, rank all
// catalogue roles, detect keyword gaps, persist one attempt row, and return
// the result together with the user's prior history. Each run is synchronous;
// on any pipeline error nothing is persisted.
type AnalyzerService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*models.AnalyzeResponse, error)
	History(username string, sortByScore bool) ([]models.AnalysisResult, error)
}

type analyzerService struct {
	extractor    DocumentExtractor
	matcher      RoleMatcher
	analysisRepo repositories.AnalysisRepository
	activityRepo repositories.ActivityRepository
}

func NewAnalyzerService(
	extractor DocumentExtractor,
	matcher RoleMatcher,
	analysisRepo repositories.AnalysisRepository,
	activityRepo repositories.ActivityRepository,
) AnalyzerService {
	return &analyzerService{
		extractor:    extractor,
		matcher:      matcher,
		analysisRepo: analysisRepo,
		activityRepo: activityRepo,
	}
}

func (s *analyzerService) Analyze(ctx context.Context, input AnalyzeInput) (*models.AnalyzeResponse, error) {
	profile, ok := catalog.FindRole(input.TargetRole)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, input.TargetRole)
	}

	doc, err := s.extractor.Extract(ctx, input.FilePath)
	if err != nil {
		return nil, err
	}

	ranked, err := s.matcher.RankAll(ctx, doc.Text)
	if err != nil {
		return nil, err
	}

	// The ranking covers every catalogue role, so the target's score is read
	// off the ranked list rather than scored again.
	targetScore, ok := ScoreFor(ranked, input.TargetRole)
	if !ok {
		return nil, fmt.Errorf("ranking is missing role %q", input.TargetRole)
	}

	suggestedRole, suggestedScore := Top(ranked)
	missing := MissingKeywords(doc.Text, profile)

	row := &models.AnalysisResult{
		Username:         input.Username,
		SourceFilename:   input.OriginalFilename,
		TargetRole:       input.TargetRole,
		TargetScore:      targetScore,
		SuggestedRole:    suggestedRole,
		SuggestedScore:   suggestedScore,
		MissingKeywords:  models.JoinKeywords(missing),
		ExtractionMethod: string(doc.Method),
	}
	if err := s.analysisRepo.Create(row); err != nil {
		return nil, err
	}

	if err := s.activityRepo.Touch(input.Username, "resume_analysis", time.Now()); err != nil {
		logger.Warn().Err(err).Str("username", input.Username).Msg("failed to record activity")
	}

	history, err := s.analysisRepo.FindByUsername(input.Username)
	if err != nil {
		return nil, err
	}

	response := &models.AnalyzeResponse{
		TargetRole:       input.TargetRole,
		TargetScore:      targetScore,
		SuggestedRole:    suggestedRole,
		SuggestedScore:   suggestedScore,
		RankedRoles:      toRankedRoles(ranked),
		MissingKeywords:  missing,
		ExtractionMethod: string(doc.Method),
		History:          history,
	}

	// An alternate suggestion is only surfaced when the best-ranked role is
	// not the one the user targeted.
	if suggestedRole != input.TargetRole {
		response.BetterMatch = &models.RankedRole{Role: suggestedRole, Score: suggestedScore}
	}

	return response, nil
}

func (s *analyzerService) History(username string, sortByScore bool) ([]models.AnalysisResult, error) {
	if sortByScore {
		return s.analysisRepo.FindByUsernameByScore(username)
	}
	return s.analysisRepo.FindByUsername(username)
}

func toRankedRoles(ranked []RoleScore) []models.RankedRole {
	out := make([]models.RankedRole, len(ranked))
	for i, entry := range ranked {
		out[i] = models.RankedRole{Role: entry.Role, Score: entry.Score}
	}
	return out
}
