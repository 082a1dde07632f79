// Package domain contains persistence models for trainees and their
// liability waivers.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Trainee represents a person enrolled in a training session.
type Trainee struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	FirstName string       `gorm:"type:text;not null"`
	LastName  string       `gorm:"type:text;not null"`
	Email     string       `gorm:"type:text"`
	Phone     string       `gorm:"type:text"`
	Address   string       `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Trainee) TableName() string { return "trainees" }

// FullName joins the name parts, dropping empty ones.
func (t Trainee) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

// Disclaimer is the liability waiver a trainee signs before a session.
// A trainee has at most one waiver per session; the latest one is the
// one printed.
type Disclaimer struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	TraineeID    snowflake.ID `gorm:"not null;index"`
	Number       string       `gorm:"type:text;not null;uniqueIndex"`
	SessionTitle string       `gorm:"type:text;not null"`
	SessionStart *time.Time   `gorm:""`

	Clauses datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	SignedAt  *time.Time `gorm:""`
	Signature string     `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Disclaimer) TableName() string { return "disclaimers" }
