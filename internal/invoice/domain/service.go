package domain

import (
	"context"

	docdomain "github.com/cides/formadesk/internal/document/domain"
)

type Service interface {
	List(ctx context.Context) ([]*Invoice, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	// BuildDocument loads the invoice and its lines and shapes them into
	// a renderable request.
	BuildDocument(ctx context.Context, id string) (docdomain.DocumentRequest, error)
}
