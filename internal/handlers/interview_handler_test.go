package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/services"
)

type fakeInterviewService struct {
	question string
	result   *models.InterviewAnswerResponse
	err      error
}

func (f *fakeInterviewService) NextQuestion(string) (string, error) {
	return f.question, f.err
}

func (f *fakeInterviewService) SubmitAnswer(string, models.InterviewAnswerRequest) (*models.InterviewAnswerResponse, error) {
	return f.result, f.err
}

func newInterviewApp(svc services.InterviewService) *fiber.App {
	app := fiber.New()
	handler := NewInterviewHandler(svc)
	app.Get("/question", handler.HandleNextQuestion)
	app.Post("/answer", handler.HandleSubmitAnswer)
	return app
}

func TestNextQuestionRequiresRole(t *testing.T) {
	app := newInterviewApp(&fakeInterviewService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/question", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNextQuestionUnknownRoleListsAlternatives(t *testing.T) {
	app := newInterviewApp(&fakeInterviewService{err: services.ErrUnknownInterviewRole})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/question?role=Astronaut", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Data Analyst")
}

func TestNextQuestionReturnsQuestion(t *testing.T) {
	app := newInterviewApp(&fakeInterviewService{question: "What is a JOIN?"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/question?role=Data+Analyst", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "What is a JOIN?")
}

func TestSubmitAnswerRequiresAllFields(t *testing.T) {
	app := newInterviewApp(&fakeInterviewService{result: &models.InterviewAnswerResponse{Rating: 4}})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/answer", models.InterviewAnswerRequest{Role: "HR"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitAnswerReturnsRating(t *testing.T) {
	app := newInterviewApp(&fakeInterviewService{result: &models.InterviewAnswerResponse{
		Rating:   4,
		Feedback: "Good effort.",
	}})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/answer", models.InterviewAnswerRequest{
		Role:     "HR",
		Question: "How do you handle conflicts between employees?",
		Response: "I mediate between both sides.",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Good effort.")
}
