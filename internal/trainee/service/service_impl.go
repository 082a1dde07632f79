package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cides/formadesk/internal/config"
	docdomain "github.com/cides/formadesk/internal/document/domain"
	traineedomain "github.com/cides/formadesk/internal/trainee/domain"
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

	traineerepo    repository.Repository[traineedomain.Trainee]
	disclaimerrepo repository.Repository[traineedomain.Disclaimer]
}

func NewService(p ServiceParam) traineedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("trainee.service"),
		cfg: p.Config,

		traineerepo:    repository.ProvideStore[traineedomain.Trainee](p.DB),
		disclaimerrepo: repository.ProvideStore[traineedomain.Disclaimer](p.DB),
	}
}

func (s *Service) List(ctx context.Context) ([]*traineedomain.Trainee, error) {
	return s.traineerepo.Find(ctx, &traineedomain.Trainee{})
}

func (s *Service) GetByID(ctx context.Context, id string) (*traineedomain.Trainee, error) {
	traineeID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, traineedomain.ErrInvalidTraineeID
	}

	trainee, err := s.traineerepo.FindOne(ctx, &traineedomain.Trainee{ID: traineeID})
	if err != nil {
		return nil, err
	}
	if trainee == nil {
		return nil, traineedomain.ErrNotFound
	}
	return trainee, nil
}

func (s *Service) BuildDisclaimerDocument(ctx context.Context, traineeID string) (docdomain.DocumentRequest, error) {
	trainee, err := s.GetByID(ctx, traineeID)
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}

	waivers, err := s.disclaimerrepo.Find(ctx, &traineedomain.Disclaimer{TraineeID: trainee.ID})
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}
	if len(waivers) == 0 {
		return docdomain.DocumentRequest{}, traineedomain.ErrDisclaimerNotFound
	}

	waiver := waivers[0]
	for _, w := range waivers[1:] {
		if w.CreatedAt.After(waiver.CreatedAt) {
			waiver = w
		}
	}

	doc := &docdomain.DisclaimerDocument{
		Number: waiver.Number,
		Trainee: docdomain.Party{
			Name:      trainee.FullName(),
			Role:      "Stagiaire",
			Address:   trainee.Address,
			Email:     trainee.Email,
			Phone:     trainee.Phone,
			Signature: docdomain.ResolveSignature(s.cfg.AssetBaseURL, waiver.Signature),
		},
		Provider: docdomain.Party{
			Name:    s.cfg.Company.Name,
			Role:    "Organisme de formation",
			Address: s.cfg.Company.Address,
			Email:   s.cfg.Company.Email,
			Phone:   s.cfg.Company.Phone,
			SIRET:   s.cfg.Company.SIRET,
		},
		SessionTitle: waiver.SessionTitle,
		SessionStart: waiver.SessionStart,
		Clauses:      waiver.Clauses,
		SignedAt:     waiver.SignedAt,
	}

	return docdomain.DocumentRequest{Kind: docdomain.KindDisclaimer, Disclaimer: doc}, nil
}
