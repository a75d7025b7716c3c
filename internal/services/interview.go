package services

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"prepvault/resume-analyzer/internal/catalog"
	"prepvault/resume-analyzer/internal/logger"
	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/repositories"
)

var ErrUnknownInterviewRole = errors.New("no interview questions for role")

// InterviewService drives the mock interview simulator: it samples questions
// per role and rates submitted answers. Ratings are simulated (3-5) and
// feedback is rule-based on answer length; responses are persisted for the
// dashboard.
type InterviewService interface {
	NextQuestion(role string) (string, error)
	SubmitAnswer(username string, req models.InterviewAnswerRequest) (*models.InterviewAnswerResponse, error)
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	activityRepo  repositories.ActivityRepository
	mu            sync.Mutex
	rng           *rand.Rand
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	activityRepo repositories.ActivityRepository,
	rng *rand.Rand,
) InterviewService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &interviewService{
		interviewRepo: interviewRepo,
		activityRepo:  activityRepo,
		rng:           rng,
	}
}

// intn draws from the shared generator. Requests are served concurrently and
// rand.Rand is not safe for concurrent use.
func (s *interviewService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *interviewService) NextQuestion(role string) (string, error) {
	questions, ok := catalog.QuestionsFor(role)
	if !ok || len(questions) == 0 {
		return "", ErrUnknownInterviewRole
	}
	return questions[s.intn(len(questions))], nil
}

func (s *interviewService) SubmitAnswer(username string, req models.InterviewAnswerRequest) (*models.InterviewAnswerResponse, error) {
	if _, ok := catalog.QuestionsFor(req.Role); !ok {
		return nil, ErrUnknownInterviewRole
	}

	rating := 3 + s.intn(3) // simulated rating in [3,5]
	feedback := answerFeedback(req.Response)

	row := &models.InterviewResponse{
		Username: username,
		Role:     req.Role,
		Question: req.Question,
		Response: req.Response,
		Rating:   rating,
		Feedback: feedback,
	}
	if err := s.interviewRepo.Create(row); err != nil {
		return nil, err
	}

	if err := s.activityRepo.Touch(username, "interview_answer", time.Now()); err != nil {
		logger.Warn().Err(err).Str("username", username).Msg("failed to record activity")
	}

	return &models.InterviewAnswerResponse{Rating: rating, Feedback: feedback}, nil
}

// answerFeedback grades by word count only: short answers are asked to
// elaborate, medium ones to add specifics, long ones to tighten up.
func answerFeedback(response string) string {
	length := len(strings.Fields(response))
	switch {
	case length < 20:
		return "Try elaborating more with examples or technical details."
	case length < 50:
		return "Good effort. Include metrics, tools, or outcomes for a stronger answer."
	default:
		return "Well-structured response. Consider refining the flow and staying concise."
	}
}
