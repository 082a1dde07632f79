package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cides/formadesk/internal/config"
	docdomain "github.com/cides/formadesk/internal/document/domain"
	ncdomain "github.com/cides/formadesk/internal/nonconformity/domain"
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

	ncrepo repository.Repository[ncdomain.NonConformity]
}

func NewService(p ServiceParam) ncdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("nonconformity.service"),
		cfg: p.Config,

		ncrepo: repository.ProvideStore[ncdomain.NonConformity](p.DB),
	}
}

func (s *Service) List(ctx context.Context) ([]*ncdomain.NonConformity, error) {
	return s.ncrepo.Find(ctx, &ncdomain.NonConformity{})
}

func (s *Service) GetByID(ctx context.Context, id string) (*ncdomain.NonConformity, error) {
	ncID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, ncdomain.ErrInvalidNonConformityID
	}

	nc, err := s.ncrepo.FindOne(ctx, &ncdomain.NonConformity{ID: ncID})
	if err != nil {
		return nil, err
	}
	if nc == nil {
		return nil, ncdomain.ErrNotFound
	}
	return nc, nil
}

func (s *Service) BuildDocument(ctx context.Context, id string) (docdomain.DocumentRequest, error) {
	nc, err := s.GetByID(ctx, id)
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}

	doc := &docdomain.NonConformityDocument{
		Number:        nc.Number,
		Title:         nc.Title,
		Description:   nc.Description,
		DetectedAt:    nc.DetectedAt,
		SeverityLabel: ncdomain.SeverityLabels[nc.Severity],
		Reporter: docdomain.Party{
			Name:      nc.ReporterName,
			Role:      "Déclarant",
			Signature: docdomain.ResolveSignature(s.cfg.AssetBaseURL, nc.ReporterSignature),
		},
		Reviewer: docdomain.Party{
			Name:      nc.ReviewerName,
			Role:      "Responsable qualité",
			Signature: docdomain.ResolveSignature(s.cfg.AssetBaseURL, nc.ReviewerSignature),
		},
		CorrectiveAction: nc.CorrectiveAction,
		PreventiveAction: nc.PreventiveAction,
		ActionDueAt:      nc.ActionDueAt,
		StatusLabel:      ncdomain.StatusLabels[nc.Status],
	}

	return docdomain.DocumentRequest{Kind: docdomain.KindNonConformity, NonConformity: doc}, nil
}
