// Package domain contains persistence models for training agreements.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ContractStatus represents agreement lifecycle states.
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusSent      ContractStatus = "SENT"
	ContractStatusSigned    ContractStatus = "SIGNED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

// StatusLabels maps lifecycle states to the French labels printed on
// documents.
var StatusLabels = map[ContractStatus]string{
	ContractStatusDraft:     "Brouillon",
	ContractStatusSent:      "Envoyée",
	ContractStatusSigned:    "Signée",
	ContractStatusCancelled: "Annulée",
}

// Contract represents a training agreement between the training body, a
// client company and one trainee.
type Contract struct {
	ID     snowflake.ID   `gorm:"primaryKey"`
	Number string         `gorm:"type:text;not null;uniqueIndex"`
	Status ContractStatus `gorm:"type:text;not null;default:'DRAFT'"`

	CompanyName    string `gorm:"type:text;not null"`
	CompanyAddress string `gorm:"type:text"`
	CompanyEmail   string `gorm:"type:text"`
	CompanySIRET   string `gorm:"column:company_siret;type:text"`

	TraineeName  string `gorm:"type:text;not null"`
	TraineeEmail string `gorm:"type:text"`

	CourseTitle string `gorm:"type:text;not null"`
	IRATALevel  string `gorm:"column:irata_level;type:text"`

	StartsAt *time.Time `gorm:""`
	EndsAt   *time.Time `gorm:""`

	// Signature references are asset paths or data URIs; resolution to a
	// renderable image happens at document build time.
	CompanySignature  string `gorm:"type:text"`
	TraineeSignature  string `gorm:"type:text"`
	ProviderSignature string `gorm:"type:text"`

	Clauses datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Contract) TableName() string { return "contracts" }

// ContractLine represents one monetary line on an agreement. Amounts
// are stored in cents; totals are always recomputed.
type ContractLine struct {
	ID             snowflake.ID `gorm:"primaryKey"`
	ContractID     snowflake.ID `gorm:"not null;index"`
	Reference      string       `gorm:"type:text"`
	Designation    string       `gorm:"type:text;not null"`
	Quantity       float64      `gorm:"not null"`
	UnitPriceCents int64        `gorm:"not null"`
	TaxRate        float64      `gorm:"not null"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (ContractLine) TableName() string { return "contract_lines" }
