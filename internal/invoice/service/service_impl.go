package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cides/formadesk/internal/config"
	docdomain "github.com/cides/formadesk/internal/document/domain"
	invoicedomain "github.com/cides/formadesk/internal/invoice/domain"
	"github.com/cides/formadesk/pkg/repository"
)

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Config config.Config
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
	cfg config.Config

	invoicerepo repository.Repository[invoicedomain.Invoice]
	linerepo    repository.Repository[invoicedomain.InvoiceLine]
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("invoice.service"),
		cfg: p.Config,

		invoicerepo: repository.ProvideStore[invoicedomain.Invoice](p.DB),
		linerepo:    repository.ProvideStore[invoicedomain.InvoiceLine](p.DB),
	}
}

func (s *Service) List(ctx context.Context) ([]*invoicedomain.Invoice, error) {
	return s.invoicerepo.Find(ctx, &invoicedomain.Invoice{})
}

func (s *Service) GetByID(ctx context.Context, id string) (*invoicedomain.Invoice, error) {
	invoiceID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, invoicedomain.ErrInvalidInvoiceID
	}

	invoice, err := s.invoicerepo.FindOne(ctx, &invoicedomain.Invoice{ID: invoiceID})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, invoicedomain.ErrNotFound
	}
	return invoice, nil
}

func (s *Service) BuildDocument(ctx context.Context, id string) (docdomain.DocumentRequest, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}

	lines, err := s.linerepo.Find(ctx, &invoicedomain.InvoiceLine{InvoiceID: invoice.ID})
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}

	doc := &docdomain.InvoiceDocument{
		Number:   invoice.Number,
		IssuedAt: invoice.IssuedAt,
		DueAt:    invoice.DueAt,
		Seller: docdomain.Party{
			Name:    s.cfg.Company.Name,
			Address: s.cfg.Company.Address,
			Email:   s.cfg.Company.Email,
			Phone:   s.cfg.Company.Phone,
			SIRET:   s.cfg.Company.SIRET,
		},
		Client: docdomain.Party{
			Name:    invoice.ClientName,
			Address: invoice.ClientAddress,
			Email:   invoice.ClientEmail,
			SIRET:   invoice.ClientSIRET,
		},
		Lines:         make([]docdomain.LineItem, 0, len(lines)),
		PaymentOrigin: paymentOrigin(invoice.PaymentOrigin),
		StatusLabel:   invoicedomain.StatusLabels[invoice.Status],
		Notes:         invoice.Notes,
	}

	for _, line := range lines {
		doc.Lines = append(doc.Lines, docdomain.LineItem{
			Reference:   line.Reference,
			Designation: line.Designation,
			Quantity:    line.Quantity,
			UnitPrice:   float64(line.UnitPriceCents) / 100,
			TaxRate:     line.TaxRate,
		})
	}

	return docdomain.DocumentRequest{Kind: docdomain.KindInvoice, Invoice: doc}, nil
}

// paymentOrigin maps the stored origin tag onto the document enum. An
// unrecognized tag is stated as unknown, never guessed at.
func paymentOrigin(raw string) docdomain.PaymentOrigin {
	switch docdomain.PaymentOrigin(raw) {
	case docdomain.PaymentOriginManual:
		return docdomain.PaymentOriginManual
	case docdomain.PaymentOriginStripe:
		return docdomain.PaymentOriginStripe
	case docdomain.PaymentOriginBankTransfer:
		return docdomain.PaymentOriginBankTransfer
	default:
		return docdomain.PaymentOriginUnknown
	}
}
