// Package domain contains persistence models for quality follow-up.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Severity grades a detected non-conformity.
type Severity string

const (
	SeverityMinor    Severity = "MINOR"
	SeverityMajor    Severity = "MAJOR"
	SeverityCritical Severity = "CRITICAL"
)

// SeverityLabels maps severities to the French labels printed on
// documents.
var SeverityLabels = map[Severity]string{
	SeverityMinor:    "Mineure",
	SeverityMajor:    "Majeure",
	SeverityCritical: "Critique",
}

// Status tracks the treatment of a non-conformity.
type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusResolved Status = "RESOLVED"
	StatusClosed   Status = "CLOSED"
)

// StatusLabels maps treatment states to French labels.
var StatusLabels = map[Status]string{
	StatusOpen:     "Ouverte",
	StatusResolved: "Résolue",
	StatusClosed:   "Clôturée",
}

// NonConformity records a quality deviation and the actions attached to
// it.
type NonConformity struct {
	ID          snowflake.ID `gorm:"primaryKey"`
	Number      string       `gorm:"type:text;not null;uniqueIndex"`
	Title       string       `gorm:"type:text;not null"`
	Description string       `gorm:"type:text"`
	Severity    Severity     `gorm:"type:text;not null;default:'MINOR'"`
	Status      Status       `gorm:"type:text;not null;default:'OPEN'"`

	DetectedAt *time.Time `gorm:""`

	ReporterName      string `gorm:"type:text;not null"`
	ReporterSignature string `gorm:"type:text"`
	ReviewerName      string `gorm:"type:text"`
	ReviewerSignature string `gorm:"type:text"`

	CorrectiveAction string     `gorm:"type:text"`
	PreventiveAction string     `gorm:"type:text"`
	ActionDueAt      *time.Time `gorm:""`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (NonConformity) TableName() string { return "nonconformities" }
