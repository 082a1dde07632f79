package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cides/formadesk/internal/config"
	docdomain "github.com/cides/formadesk/internal/document/domain"
	invoicedomain "github.com/cides/formadesk/internal/invoice/domain"
	"github.com/cides/formadesk/pkg/repository"
)

func newTestService(t *testing.T) (*Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&invoicedomain.Invoice{}, &invoicedomain.InvoiceLine{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{
		Company: config.CompanyConfig{
			Name:    "CI.DES",
			Address: "1 rue de la Corderie, 17000 La Rochelle",
			Email:   "contact@cides.fr",
			SIRET:   "123 456 789 00012",
		},
	}

	svc := &Service{
		db:  db,
		log: zap.NewNop(),
		cfg: cfg,

		invoicerepo: repository.ProvideStore[invoicedomain.Invoice](db),
		linerepo:    repository.ProvideStore[invoicedomain.InvoiceLine](db),
	}
	return svc, node
}

func seedInvoice(t *testing.T, svc *Service, node *snowflake.Node) *invoicedomain.Invoice {
	t.Helper()

	invoice := &invoicedomain.Invoice{
		ID:            node.Generate(),
		Number:        "FAC-2024-017",
		Status:        invoicedomain.InvoiceStatusSent,
		ClientName:    "ACME Travaux",
		ClientAddress: "12 avenue des Cordistes, 75011 Paris",
		ClientEmail:   "compta@acme-travaux.fr",
		PaymentOrigin: "bank_transfer",
	}
	require.NoError(t, svc.invoicerepo.Create(context.Background(), invoice))

	require.NoError(t, svc.linerepo.Create(context.Background(), &invoicedomain.InvoiceLine{
		ID:             node.Generate(),
		InvoiceID:      invoice.ID,
		Reference:      "FORM-GSR",
		Designation:    "Formation cordiste GSR",
		Quantity:       2,
		UnitPriceCents: 120050,
		TaxRate:        20,
	}))
	return invoice
}

func TestGetByID(t *testing.T) {
	svc, node := newTestService(t)
	invoice := seedInvoice(t, svc, node)

	got, err := svc.GetByID(context.Background(), invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "FAC-2024-017", got.Number)
}

func TestGetByIDInvalid(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "not-a-snowflake")
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidInvoiceID)
}

func TestGetByIDMissing(t *testing.T) {
	svc, node := newTestService(t)

	_, err := svc.GetByID(context.Background(), node.Generate().String())
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)
}

func TestList(t *testing.T) {
	svc, node := newTestService(t)
	seedInvoice(t, svc, node)

	invoices, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, invoices, 1)
}

func TestBuildDocument(t *testing.T) {
	svc, node := newTestService(t)
	invoice := seedInvoice(t, svc, node)

	req, err := svc.BuildDocument(context.Background(), invoice.ID.String())
	require.NoError(t, err)

	assert.Equal(t, docdomain.KindInvoice, req.Kind)
	require.NotNil(t, req.Invoice)

	doc := req.Invoice
	assert.Equal(t, "FAC-2024-017", doc.Number)
	assert.Equal(t, "CI.DES", doc.Seller.Name)
	assert.Equal(t, "ACME Travaux", doc.Client.Name)
	assert.Equal(t, "Émise", doc.StatusLabel)
	assert.Equal(t, docdomain.PaymentOriginBankTransfer, doc.PaymentOrigin)

	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "Formation cordiste GSR", doc.Lines[0].Designation)
	assert.InDelta(t, 1200.50, doc.Lines[0].UnitPrice, 1e-9)

	totals := docdomain.ComputeTotals(doc.Lines)
	assert.InDelta(t, 2401, totals.HT, 1e-9)
	assert.InDelta(t, 2881.2, totals.TTC, 1e-9)
}

func TestBuildDocumentUnknownPaymentOrigin(t *testing.T) {
	svc, node := newTestService(t)

	invoice := &invoicedomain.Invoice{
		ID:            node.Generate(),
		Number:        "FAC-2024-018",
		Status:        invoicedomain.InvoiceStatusDraft,
		ClientName:    "Client Mystère",
		PaymentOrigin: "carrier-pigeon",
	}
	require.NoError(t, svc.invoicerepo.Create(context.Background(), invoice))

	req, err := svc.BuildDocument(context.Background(), invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, docdomain.PaymentOriginUnknown, req.Invoice.PaymentOrigin)
}
