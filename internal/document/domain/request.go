// Package domain contains the typed payloads of the document pipeline.
package domain

import (
	"math"
	"strings"
	"time"
)

// Kind identifies which business document a request renders.
type Kind string

const (
	KindInvoice       Kind = "invoice"
	KindContract      Kind = "contract"
	KindNonConformity Kind = "nonconformity"
	KindDisclaimer    Kind = "disclaimer"
	KindSurveyExport  Kind = "survey-export"
)

// AdminOnly reports whether the kind requires an elevated role.
func (k Kind) AdminOnly() bool {
	switch k {
	case KindContract, KindNonConformity, KindSurveyExport:
		return true
	default:
		return false
	}
}

func ParseKind(raw string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindInvoice:
		return KindInvoice, true
	case KindContract:
		return KindContract, true
	case KindNonConformity:
		return KindNonConformity, true
	case KindDisclaimer:
		return KindDisclaimer, true
	case KindSurveyExport:
		return KindSurveyExport, true
	default:
		return "", false
	}
}

// DocumentRequest is a tagged union over the renderable document kinds.
// Exactly one variant must be set and must match Kind.
type DocumentRequest struct {
	Kind Kind `json:"kind"`

	Invoice       *InvoiceDocument       `json:"invoice,omitempty"`
	Contract      *ContractDocument      `json:"contract,omitempty"`
	NonConformity *NonConformityDocument `json:"nonconformity,omitempty"`
	Disclaimer    *DisclaimerDocument    `json:"disclaimer,omitempty"`
	SurveyExport  *SurveyExportDocument  `json:"survey_export,omitempty"`
}

// Party is one side of a document: the training body, a client company,
// a trainee, a reviewer.
type Party struct {
	Name      string          `json:"name"`
	Role      string          `json:"role,omitempty"`
	Address   string          `json:"address,omitempty"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	SIRET     string          `json:"siret,omitempty"`
	Signature *SignatureImage `json:"signature,omitempty"`
}

// SignatureImage references a raster signature, either inline or hosted.
// A nil SignatureImage is valid and renders as an explicit placeholder.
type SignatureImage struct {
	DataURI string `json:"data_uri,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Source returns the single usable image reference, empty when unset.
func (s *SignatureImage) Source() string {
	if s == nil {
		return ""
	}
	if s.DataURI != "" {
		return s.DataURI
	}
	return s.URL
}

// LineItem is one monetary line. Totals are always derived from these
// fields, never stored alongside them.
type LineItem struct {
	Reference   string  `json:"reference"`
	Designation string  `json:"designation"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxRate     float64 `json:"tax_rate"`
}

// Total returns quantity x unit price for this line.
func (l LineItem) Total() float64 {
	return l.Quantity * l.UnitPrice
}

// Totals carries the recomputed HT / TVA / TTC amounts.
type Totals struct {
	HT  float64
	TVA float64
	TTC float64
}

// ComputeTotals derives HT, TVA and TTC from the line items.
func ComputeTotals(lines []LineItem) Totals {
	var t Totals
	for _, l := range lines {
		lineTotal := l.Total()
		t.HT += lineTotal
		t.TVA += lineTotal * l.TaxRate / 100
	}
	t.TTC = t.HT + t.TVA
	return t
}

// PaymentOrigin tags how an invoice was settled. It is an explicit enum:
// an unknown origin is stated, never inferred from an absent field.
type PaymentOrigin string

const (
	PaymentOriginManual       PaymentOrigin = "manual"
	PaymentOriginStripe       PaymentOrigin = "stripe"
	PaymentOriginBankTransfer PaymentOrigin = "bank_transfer"
	PaymentOriginUnknown      PaymentOrigin = "unknown"
)

// Label returns the French label printed on documents.
func (p PaymentOrigin) Label() string {
	switch p {
	case PaymentOriginManual:
		return "Règlement manuel"
	case PaymentOriginStripe:
		return "Carte bancaire (Stripe)"
	case PaymentOriginBankTransfer:
		return "Virement bancaire"
	default:
		return "Non spécifié"
	}
}

// InvoiceDocument carries everything the invoice template needs.
type InvoiceDocument struct {
	Number        string        `json:"number"`
	IssuedAt      *time.Time    `json:"issued_at,omitempty"`
	DueAt         *time.Time    `json:"due_at,omitempty"`
	Seller        Party         `json:"seller"`
	Client        Party         `json:"client"`
	Lines         []LineItem    `json:"lines"`
	PaymentOrigin PaymentOrigin `json:"payment_origin"`
	StatusLabel   string        `json:"status_label,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// ContractDocument is a training agreement between the training body and
// a client company for one trainee and course.
type ContractDocument struct {
	Number      string     `json:"number"`
	Company     Party      `json:"company"`
	Trainee     Party      `json:"trainee"`
	Provider    Party      `json:"provider"`
	CourseTitle string     `json:"course_title"`
	IRATALevel  string     `json:"irata_level,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Lines       []LineItem `json:"lines"`
	Clauses     []string   `json:"clauses,omitempty"`
	StatusLabel string     `json:"status_label,omitempty"`
}

// NonConformityDocument reports a detected non-conformity and the
// corrective/preventive actions attached to it.
type NonConformityDocument struct {
	Number           string     `json:"number"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	DetectedAt       *time.Time `json:"detected_at,omitempty"`
	SeverityLabel    string     `json:"severity_label,omitempty"`
	Reporter         Party      `json:"reporter"`
	Reviewer         Party      `json:"reviewer"`
	CorrectiveAction string     `json:"corrective_action,omitempty"`
	PreventiveAction string     `json:"preventive_action,omitempty"`
	ActionDueAt      *time.Time `json:"action_due_at,omitempty"`
	StatusLabel      string     `json:"status_label,omitempty"`
}

// DisclaimerDocument is the liability waiver a trainee signs before a
// session.
type DisclaimerDocument struct {
	Number       string     `json:"number"`
	Trainee      Party      `json:"trainee"`
	Provider     Party      `json:"provider"`
	SessionTitle string     `json:"session_title"`
	SessionStart *time.Time `json:"session_start,omitempty"`
	Clauses      []string   `json:"clauses"`
	SignedAt     *time.Time `json:"signed_at,omitempty"`
}

// SurveyAnswer is one answered question of a satisfaction survey.
type SurveyAnswer struct {
	Question string   `json:"question"`
	Rating   *float64 `json:"rating,omitempty"`
	Comment  string   `json:"comment,omitempty"`
}

// SurveyExportDocument is the printable export of one survey.
type SurveyExportDocument struct {
	Number       string         `json:"number"`
	Title        string         `json:"title"`
	SessionTitle string         `json:"session_title,omitempty"`
	Respondent   Party          `json:"respondent"`
	ConductedAt  *time.Time     `json:"conducted_at,omitempty"`
	Answers      []SurveyAnswer `json:"answers"`
}

// Validate rejects malformed requests before any render is attempted.
func (r DocumentRequest) Validate() error {
	switch r.Kind {
	case KindInvoice:
		if r.Invoice == nil {
			return newFieldError("invoice", "missing_variant")
		}
		if strings.TrimSpace(r.Invoice.Number) == "" {
			return newFieldError("invoice.number", "required")
		}
		return validateLines("invoice.lines", r.Invoice.Lines)
	case KindContract:
		if r.Contract == nil {
			return newFieldError("contract", "missing_variant")
		}
		if strings.TrimSpace(r.Contract.Number) == "" {
			return newFieldError("contract.number", "required")
		}
		if strings.TrimSpace(r.Contract.CourseTitle) == "" {
			return newFieldError("contract.course_title", "required")
		}
		return validateLines("contract.lines", r.Contract.Lines)
	case KindNonConformity:
		if r.NonConformity == nil {
			return newFieldError("nonconformity", "missing_variant")
		}
		if strings.TrimSpace(r.NonConformity.Number) == "" {
			return newFieldError("nonconformity.number", "required")
		}
		return nil
	case KindDisclaimer:
		if r.Disclaimer == nil {
			return newFieldError("disclaimer", "missing_variant")
		}
		if strings.TrimSpace(r.Disclaimer.Trainee.Name) == "" {
			return newFieldError("disclaimer.trainee.name", "required")
		}
		return nil
	case KindSurveyExport:
		if r.SurveyExport == nil {
			return newFieldError("survey_export", "missing_variant")
		}
		if strings.TrimSpace(r.SurveyExport.Title) == "" {
			return newFieldError("survey_export.title", "required")
		}
		return nil
	default:
		return newFieldError("kind", "unknown_kind")
	}
}

// Identifier returns the identifying fields a deterministic filename is
// built from.
func (r DocumentRequest) Identifier() (number, subject string) {
	switch r.Kind {
	case KindInvoice:
		if r.Invoice != nil {
			return r.Invoice.Number, r.Invoice.Client.Name
		}
	case KindContract:
		if r.Contract != nil {
			return r.Contract.Number, r.Contract.Trainee.Name
		}
	case KindNonConformity:
		if r.NonConformity != nil {
			return r.NonConformity.Number, r.NonConformity.Title
		}
	case KindDisclaimer:
		if r.Disclaimer != nil {
			return r.Disclaimer.Number, r.Disclaimer.Trainee.Name
		}
	case KindSurveyExport:
		if r.SurveyExport != nil {
			return r.SurveyExport.Number, r.SurveyExport.Title
		}
	}
	return "", ""
}

func validateLines(field string, lines []LineItem) error {
	for _, l := range lines {
		if !isFiniteNonNegative(l.Quantity) {
			return newFieldError(field, "invalid_quantity")
		}
		if !isFiniteNonNegative(l.UnitPrice) {
			return newFieldError(field, "invalid_unit_price")
		}
		if !isFiniteNonNegative(l.TaxRate) {
			return newFieldError(field, "invalid_tax_rate")
		}
	}
	return nil
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
