package models

import "time"

// InterviewResponse is one answered mock interview question.
type InterviewResponse struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Username  string    `gorm:"type:text;index;not null" json:"username"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Response  string    `gorm:"type:text" json:"response"`
	Rating    int       `json:"rating"`
	Feedback  string    `gorm:"type:text" json:"feedback"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

func (InterviewResponse) TableName() string {
	return "interview_responses"
}
