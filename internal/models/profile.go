package models

import "time"

// UserProfile is the editable per-user profile row.
type UserProfile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Username  string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:text" json:"email"`
	Location  string    `gorm:"type:text" json:"location"`
	Bio       string    `gorm:"type:text" json:"bio"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
