// Package domain contains persistence models for satisfaction surveys.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Survey represents one completed satisfaction survey.
type Survey struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	Number       string       `gorm:"type:text;not null;uniqueIndex"`
	Title        string       `gorm:"type:text;not null"`
	SessionTitle string       `gorm:"type:text"`

	RespondentName  string `gorm:"type:text"`
	RespondentEmail string `gorm:"type:text"`

	ConductedAt *time.Time `gorm:""`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Survey) TableName() string { return "surveys" }

// SurveyAnswer is one answered question. Rating is nullable: free-text
// questions carry no score.
type SurveyAnswer struct {
	ID       snowflake.ID `gorm:"primaryKey"`
	SurveyID snowflake.ID `gorm:"not null;index"`
	Position int          `gorm:"not null"`
	Question string       `gorm:"type:text;not null"`
	Rating   *float64     `gorm:""`
	Comment  string       `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (SurveyAnswer) TableName() string { return "survey_answers" }
