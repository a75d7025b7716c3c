package services

import (
	"fmt"
	"sort"
	"time"

	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeAnalysisRepo struct {
	rows      []models.AnalysisResult
	createErr error
	nextID    uint
	clock     time.Time
}

var _ repositories.AnalysisRepository = (*fakeAnalysisRepo)(nil)

func (f *fakeAnalysisRepo) Create(result *models.AnalysisResult) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	result.ID = f.nextID
	if result.Timestamp.IsZero() {
		result.Timestamp = f.clock
	}
	f.rows = append(f.rows, *result)
	return nil
}

func (f *fakeAnalysisRepo) FindByUsername(username string) ([]models.AnalysisResult, error) {
	out := []models.AnalysisResult{}
	for _, row := range f.rows {
		if row.Username == username {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAnalysisRepo) FindByUsernameByScore(username string) ([]models.AnalysisResult, error) {
	out, _ := f.FindByUsername(username)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TargetScore > out[j].TargetScore
	})
	return out, nil
}

func (f *fakeAnalysisRepo) FindLatestByUsername(username string) (*models.AnalysisResult, error) {
	rows, _ := f.FindByUsername(username)
	if len(rows) == 0 {
		return nil, nil
	}
	latest := rows[len(rows)-1]
	return &latest, nil
}

func (f *fakeAnalysisRepo) CountByUsername(username string) (int64, error) {
	rows, _ := f.FindByUsername(username)
	return int64(len(rows)), nil
}

type fakeActivityRepo struct {
	touches    []string
	activities map[string]models.UserActivity
	touchErr   error
}

var _ repositories.ActivityRepository = (*fakeActivityRepo)(nil)

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: map[string]models.UserActivity{}}
}

func (f *fakeActivityRepo) Touch(username, action string, at time.Time) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	f.touches = append(f.touches, fmt.Sprintf("%s:%s", username, action))
	f.activities[username] = models.UserActivity{
		Username:   username,
		LastAction: action,
		LastActive: at,
	}
	return nil
}

func (f *fakeActivityRepo) FindInactiveSince(cutoff time.Time) ([]models.UserActivity, error) {
	out := []models.UserActivity{}
	for _, activity := range f.activities {
		if activity.LastActive.Before(cutoff) {
			out = append(out, activity)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type fakeInterviewRepo struct {
	rows      []models.InterviewResponse
	createErr error
	nextID    uint
}

var _ repositories.InterviewRepository = (*fakeInterviewRepo)(nil)

func (f *fakeInterviewRepo) Create(response *models.InterviewResponse) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	response.ID = f.nextID
	f.rows = append(f.rows, *response)
	return nil
}

func (f *fakeInterviewRepo) FindByUsername(username string) ([]models.InterviewResponse, error) {
	out := []models.InterviewResponse{}
	for _, row := range f.rows {
		if row.Username == username {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeInterviewRepo) AverageRating(username string) (*float64, error) {
	rows, _ := f.FindByUsername(username)
	if len(rows) == 0 {
		return nil, nil
	}
	var sum float64
	for _, row := range rows {
		sum += float64(row.Rating)
	}
	avg := sum / float64(len(rows))
	return &avg, nil
}

func (f *fakeInterviewRepo) CountByUsername(username string) (int64, error) {
	rows, _ := f.FindByUsername(username)
	return int64(len(rows)), nil
}

type fakeNotificationRepo struct {
	notes  []models.Notification
	nextID uint
	clock  time.Time
}

var _ repositories.NotificationRepository = (*fakeNotificationRepo)(nil)

func (f *fakeNotificationRepo) Create(notification *models.Notification) error {
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	notification.ID = f.nextID
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = f.clock
	}
	f.notes = append(f.notes, *notification)
	return nil
}

func (f *fakeNotificationRepo) FindByUsername(username string) ([]models.Notification, error) {
	out := []models.Notification{}
	for i := len(f.notes) - 1; i >= 0; i-- {
		if f.notes[i].Username == username {
			out = append(out, f.notes[i])
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) FindLatestByUsername(username string) (*models.Notification, error) {
	notes, _ := f.FindByUsername(username)
	if len(notes) == 0 {
		return nil, nil
	}
	return &notes[0], nil
}

type fakeUserRepo struct {
	users map[string]models.User
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}
