package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prepvault/resume-analyzer/internal/models"
)

type ActivityRepository interface {
	Touch(username, action string, at time.Time) error
	FindInactiveSince(cutoff time.Time) ([]models.UserActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Touch records username's most recent action, creating the row on first use.
func (r *activityRepository) Touch(username, action string, at time.Time) error {
	activity := models.UserActivity{
		Username:   username,
		LastAction: action,
		LastActive: at,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_action", "last_active"}),
	}).Create(&activity).Error
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (r *activityRepository) FindInactiveSince(cutoff time.Time) ([]models.UserActivity, error) {
	activities := []models.UserActivity{}
	err := r.db.
		Where("last_active < ?", cutoff).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find inactive users: %w", err)
	}
	return activities, nil
}

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByUsername(username string) ([]models.Notification, error)
	FindLatestByUsername(username string) (*models.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) FindByUsername(username string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := r.db.
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) FindLatestByUsername(username string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.
		Where("username = ?", username).
		Order("created_at DESC").
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest notification: %w", err)
	}
	return &notification, nil
}
