package models

import "time"

// UserActivity tracks the last time a user did something the notifier cares
// about (analysis run, interview answer). One row per user, upserted.
type UserActivity struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Username   string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	LastAction string    `gorm:"type:text" json:"last_action"`
	LastActive time.Time `gorm:"not null" json:"last_active"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}

// Notification is one nudge message generated for an inactive user.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Username  string    `gorm:"type:text;index;not null" json:"username"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
