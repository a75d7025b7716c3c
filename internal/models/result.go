package models

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// RankedRole is one entry of a role ranking as returned to the caller.
type RankedRole struct {
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}

// AnalyzeResponse is the full output of one resume analysis run.
type AnalyzeResponse struct {
	TargetRole       string           `json:"target_role"`
	TargetScore      float64          `json:"target_score"`
	SuggestedRole    string           `json:"suggested_role"`
	SuggestedScore   float64          `json:"suggested_score"`
	BetterMatch      *RankedRole      `json:"better_match,omitempty"`
	RankedRoles      []RankedRole     `json:"ranked_roles"`
	MissingKeywords  []string         `json:"missing_keywords"`
	ExtractionMethod string           `json:"extraction_method"`
	History          []AnalysisResult `json:"history"`
}

type RoleMatchRequest struct {
	Description string `json:"description"`
}

type InterviewAnswerRequest struct {
	Role     string `json:"role"`
	Question string `json:"question"`
	Response string `json:"response"`
}

type InterviewAnswerResponse struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

type ProfileRequest struct {
	Email    string `json:"email"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

// DashboardResponse summarizes a user's progress. Score fields are nil when
// the user has no recorded attempts of that kind.
type DashboardResponse struct {
	Username           string   `json:"username"`
	LatestResumeScore  *float64 `json:"latest_resume_score"`
	AvgInterviewRating *float64 `json:"avg_interview_rating"`
	ResumeAttempts     int64    `json:"resume_attempts"`
	InterviewAnswers   int64    `json:"interview_answers"`
}
