package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cides/formadesk/internal/document/domain"
)

var frozenNow = time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)

func invoiceRequest() domain.DocumentRequest {
	issued := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	return domain.DocumentRequest{
		Kind: domain.KindInvoice,
		Invoice: &domain.InvoiceDocument{
			Number:   "FAC-2024-001",
			IssuedAt: &issued,
			Seller:   domain.Party{Name: "CI.DES", SIRET: "123 456 789"},
			Client:   domain.Party{Name: "ACME Travaux", Email: "compta@acme.fr"},
			Lines: []domain.LineItem{
				{Reference: "F1", Designation: "Formation cordiste niveau 1", Quantity: 1, UnitPrice: 1000, TaxRate: 20},
				{Designation: "Support de cours", Quantity: 2, UnitPrice: 25, TaxRate: 20},
			},
			PaymentOrigin: domain.PaymentOriginBankTransfer,
		},
	}
}

func TestBuildMarkupInvoiceTotals(t *testing.T) {
	b := NewBuilder()

	out, err := b.BuildMarkup(invoiceRequest(), domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)

	// HT 1050, TVA 210, TTC 1260, recomputed from the lines.
	assert.Contains(t, out, "1 050,00 €")
	assert.Contains(t, out, "210,00 €")
	assert.Contains(t, out, "1 260,00 €")
	assert.Contains(t, out, "Facture FAC-2024-001")
	assert.Contains(t, out, "Virement bancaire")
	assert.Contains(t, out, "15/05/2024")
}

func TestBuildMarkupDeterministic(t *testing.T) {
	b := NewBuilder()

	first, err := b.BuildMarkup(invoiceRequest(), domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)
	second, err := b.BuildMarkup(invoiceRequest(), domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildMarkupGeneratedAtIsolated(t *testing.T) {
	b := NewBuilder()

	first, err := b.BuildMarkup(invoiceRequest(), domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)
	second, err := b.BuildMarkup(invoiceRequest(), domain.DefaultRenderOptions(), frozenNow.Add(24*time.Hour))
	require.NoError(t, err)

	// Only the marked generated-at footer field may differ.
	assert.NotEqual(t, first, second)
	stripped := strings.ReplaceAll(first, FormatTimestamp(frozenNow), "")
	strippedSecond := strings.ReplaceAll(second, FormatTimestamp(frozenNow.Add(24*time.Hour)), "")
	assert.Equal(t, stripped, strippedSecond)
}

func TestBuildMarkupEmptyLines(t *testing.T) {
	b := NewBuilder()

	req := invoiceRequest()
	req.Invoice.Lines = nil

	out, err := b.BuildMarkup(req, domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)

	// Zero totals, structure intact.
	assert.Contains(t, out, "0,00 €")
	assert.Contains(t, out, "Total HT")
}

func TestBuildMarkupMissingFieldsUsePlaceholders(t *testing.T) {
	b := NewBuilder()

	req := domain.DocumentRequest{
		Kind: domain.KindDisclaimer,
		Disclaimer: &domain.DisclaimerDocument{
			Number:       "DEC-001",
			Trainee:      domain.Party{Name: "Jean Dupont"},
			Provider:     domain.Party{Name: "CI.DES"},
			SessionTitle: "Session cordiste",
		},
	}

	out, err := b.BuildMarkup(req, domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)

	assert.Contains(t, out, "Non signé")
	assert.Contains(t, out, "—")
	// The placeholder is text, never a broken image element.
	assert.NotContains(t, out, "<img")
}

func TestBuildMarkupZeroRateLine(t *testing.T) {
	b := NewBuilder()

	req := domain.DocumentRequest{
		Kind: domain.KindInvoice,
		Invoice: &domain.InvoiceDocument{
			Number: "FAC-2024-002",
			Seller: domain.Party{Name: "CI.DES"},
			Client: domain.Party{Name: "ACME Travaux"},
			Lines: []domain.LineItem{
				{Reference: "CI.IFF", Designation: "Frais de formation", Quantity: 1, UnitPrice: 1000, TaxRate: 0},
			},
		},
	}

	out, err := b.BuildMarkup(req, domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)

	assert.Contains(t, out, "1 000,00 €")
	assert.Contains(t, out, "0,00 €")
}

func TestBuildMarkupValidation(t *testing.T) {
	b := NewBuilder()

	req := invoiceRequest()
	req.Invoice.Number = ""

	_, err := b.BuildMarkup(req, domain.DefaultRenderOptions(), frozenNow)
	var fieldErr *domain.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "invoice.number", fieldErr.Field)
}

func TestBuildMarkupUnknownKind(t *testing.T) {
	b := NewBuilder()

	_, err := b.BuildMarkup(domain.DocumentRequest{Kind: "poster"}, domain.DefaultRenderOptions(), frozenNow)
	var fieldErr *domain.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "kind", fieldErr.Field)
}

func TestBuildMarkupSignatureDataURI(t *testing.T) {
	b := NewBuilder()

	req := domain.DocumentRequest{
		Kind: domain.KindDisclaimer,
		Disclaimer: &domain.DisclaimerDocument{
			Number:       "DEC-002",
			Trainee:      domain.Party{Name: "Jean Dupont", Signature: &domain.SignatureImage{DataURI: "data:image/png;base64,AAAA"}},
			Provider:     domain.Party{Name: "CI.DES"},
			SessionTitle: "Session cordiste",
		},
	}

	out, err := b.BuildMarkup(req, domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)

	// The data URI must survive template escaping untouched.
	assert.Contains(t, out, `src="data:image/png;base64,AAAA"`)
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestBuildMarkupSelfContained(t *testing.T) {
	b := NewBuilder()

	out, err := b.BuildMarkup(invoiceRequest(), domain.DefaultRenderOptions(), frozenNow)
	require.NoError(t, err)

	// No external fetches: styles inline, no script tags.
	assert.NotContains(t, out, "<link")
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "<style>")
}
