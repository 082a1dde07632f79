// Package domain contains persistence models for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// StatusLabels maps lifecycle states to the French labels printed on
// documents.
var StatusLabels = map[InvoiceStatus]string{
	InvoiceStatusDraft:     "Brouillon",
	InvoiceStatusSent:      "Émise",
	InvoiceStatusPaid:      "Réglée",
	InvoiceStatusCancelled: "Annulée",
}

// Invoice represents a billed training service.
type Invoice struct {
	ID            snowflake.ID      `gorm:"primaryKey"`
	Number        string            `gorm:"type:text;not null;uniqueIndex"`
	Status        InvoiceStatus     `gorm:"type:text;not null;default:'DRAFT'"`
	ClientName    string            `gorm:"type:text;not null"`
	ClientAddress string            `gorm:"type:text"`
	ClientEmail   string            `gorm:"type:text"`
	ClientSIRET   string            `gorm:"column:client_siret;type:text"`
	PaymentOrigin string            `gorm:"type:text;not null;default:'unknown'"`
	IssuedAt      *time.Time        `gorm:""`
	DueAt         *time.Time        `gorm:""`
	PaidAt        *time.Time        `gorm:""`
	Notes         string            `gorm:"type:text"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceLine represents one monetary line on an invoice. Amounts are
// stored in cents; totals are never stored, always recomputed.
type InvoiceLine struct {
	ID             snowflake.ID `gorm:"primaryKey"`
	InvoiceID      snowflake.ID `gorm:"not null;index"`
	Reference      string       `gorm:"type:text"`
	Designation    string       `gorm:"type:text;not null"`
	Quantity       float64      `gorm:"not null"`
	UnitPriceCents int64        `gorm:"not null"`
	TaxRate        float64      `gorm:"not null"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (InvoiceLine) TableName() string { return "invoice_lines" }
