package domain

import (
	"context"

	docdomain "github.com/cides/formadesk/internal/document/domain"
)

type Service interface {
	List(ctx context.Context) ([]*Survey, error)
	GetByID(ctx context.Context, id string) (*Survey, error)
	// BuildExport loads the survey and its answers, ordered by position,
	// and shapes them into a renderable request.
	BuildExport(ctx context.Context, id string) (docdomain.DocumentRequest, error)
}
