package models

import (
	"strings"
	"time"
)

// KeywordSeparator delimits the missing-keyword list inside a single text
// column. Keywords never contain '|'.
const KeywordSeparator = "|"

// AnalysisResult is one persisted resume-vs-role evaluation attempt. Rows are
// append-only: they are never updated or deleted, and repeated uploads of the
// same filename produce new rows.
type AnalysisResult struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Username         string    `gorm:"type:text;index;not null" json:"username"`
	SourceFilename   string    `gorm:"type:text;not null" json:"source_filename"`
	TargetRole       string    `gorm:"type:text;not null" json:"target_role"`
	TargetScore      float64   `json:"target_score"`
	SuggestedRole    string    `gorm:"type:text" json:"suggested_role"`
	SuggestedScore   float64   `json:"suggested_score"`
	MissingKeywords  string    `gorm:"type:text" json:"-"`
	ExtractionMethod string    `gorm:"type:text" json:"extraction_method"`
	Timestamp        time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

func (AnalysisResult) TableName() string {
	return "analyses"
}

// MissingKeywordList splits the stored delimited column back into a slice,
// preserving order. An empty column yields an empty slice.
func (a AnalysisResult) MissingKeywordList() []string {
	if a.MissingKeywords == "" {
		return []string{}
	}
	return strings.Split(a.MissingKeywords, KeywordSeparator)
}

// JoinKeywords serializes a keyword list for storage.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, KeywordSeparator)
}
