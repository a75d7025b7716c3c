package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"prepvault/resume-analyzer/internal/models"
)

type InterviewRepository interface {
	Create(response *models.InterviewResponse) error
	FindByUsername(username string) ([]models.InterviewResponse, error)
	AverageRating(username string) (*float64, error)
	CountByUsername(username string) (int64, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(response *models.InterviewResponse) error {
	if err := r.db.Create(response).Error; err != nil {
		return fmt.Errorf("failed to save interview response: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindByUsername(username string) ([]models.InterviewResponse, error) {
	responses := []models.InterviewResponse{}
	err := r.db.
		Where("username = ?", username).
		Order("timestamp ASC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load interview responses: %w", err)
	}
	return responses, nil
}

// AverageRating returns nil when the user has no answers yet.
func (r *interviewRepository) AverageRating(username string) (*float64, error) {
	var count int64
	if err := r.db.Model(&models.InterviewResponse{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count interview responses: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	var avg float64
	err := r.db.Model(&models.InterviewResponse{}).
		Where("username = ?", username).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}
	return &avg, nil
}

func (r *interviewRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.db.Model(&models.InterviewResponse{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count interview responses: %w", err)
	}
	return count, nil
}
