package domain

import (
	"context"

	docdomain "github.com/cides/formadesk/internal/document/domain"
)

type Service interface {
	List(ctx context.Context) ([]*NonConformity, error)
	GetByID(ctx context.Context, id string) (*NonConformity, error)
	// BuildDocument shapes the record into a renderable request.
	BuildDocument(ctx context.Context, id string) (docdomain.DocumentRequest, error)
}
