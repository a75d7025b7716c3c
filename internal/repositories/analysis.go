package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"prepvault/resume-analyzer/internal/models"
)

// AnalysisRepository is the append-only store of analysis attempts. The
// surface deliberately has no update or delete: every attempt is a new row,
// including repeated uploads of the same filename.
type AnalysisRepository interface {
	Create(result *models.AnalysisResult) error
	FindByUsername(username string) ([]models.AnalysisResult, error)
	FindByUsernameByScore(username string) ([]models.AnalysisResult, error)
	FindLatestByUsername(username string) (*models.AnalysisResult, error)
	CountByUsername(username string) (int64, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(result *models.AnalysisResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}
	return nil
}

// FindByUsername returns all attempts for username in storage order
// (timestamp ascending). A user with no attempts gets an empty slice.
func (r *analysisRepository) FindByUsername(username string) ([]models.AnalysisResult, error) {
	results := []models.AnalysisResult{}
	err := r.db.
		Where("username = ?", username).
		Order("timestamp ASC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis history: %w", err)
	}
	return results, nil
}

// FindByUsernameByScore returns the same rows re-sorted by target score
// descending, for display.
func (r *analysisRepository) FindByUsernameByScore(username string) ([]models.AnalysisResult, error) {
	results := []models.AnalysisResult{}
	err := r.db.
		Where("username = ?", username).
		Order("target_score DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis history: %w", err)
	}
	return results, nil
}

func (r *analysisRepository) FindLatestByUsername(username string) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := r.db.
		Where("username = ?", username).
		Order("timestamp DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest analysis: %w", err)
	}
	return &result, nil
}

func (r *analysisRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AnalysisResult{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}
