package domain

import (
	"context"

	docdomain "github.com/cides/formadesk/internal/document/domain"
)

type Service interface {
	List(ctx context.Context) ([]*Trainee, error)
	GetByID(ctx context.Context, id string) (*Trainee, error)
	// BuildDisclaimerDocument loads the trainee's most recent waiver and
	// shapes it into a renderable request.
	BuildDisclaimerDocument(ctx context.Context, traineeID string) (docdomain.DocumentRequest, error)
}
