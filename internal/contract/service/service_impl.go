package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cides/formadesk/internal/config"
	contractdomain "github.com/cides/formadesk/internal/contract/domain"
	docdomain "github.com/cides/formadesk/internal/document/domain"
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

	contractrepo repository.Repository[contractdomain.Contract]
	linerepo     repository.Repository[contractdomain.ContractLine]
}

func NewService(p ServiceParam) contractdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("contract.service"),
		cfg: p.Config,

		contractrepo: repository.ProvideStore[contractdomain.Contract](p.DB),
		linerepo:     repository.ProvideStore[contractdomain.ContractLine](p.DB),
	}
}

func (s *Service) List(ctx context.Context) ([]*contractdomain.Contract, error) {
	return s.contractrepo.Find(ctx, &contractdomain.Contract{})
}

func (s *Service) GetByID(ctx context.Context, id string) (*contractdomain.Contract, error) {
	contractID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, contractdomain.ErrInvalidContractID
	}

	contract, err := s.contractrepo.FindOne(ctx, &contractdomain.Contract{ID: contractID})
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, contractdomain.ErrNotFound
	}
	return contract, nil
}

func (s *Service) BuildDocument(ctx context.Context, id string) (docdomain.DocumentRequest, error) {
	contract, err := s.GetByID(ctx, id)
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}

	lines, err := s.linerepo.Find(ctx, &contractdomain.ContractLine{ContractID: contract.ID})
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}

	doc := &docdomain.ContractDocument{
		Number: contract.Number,
		Company: docdomain.Party{
			Name:      contract.CompanyName,
			Role:      "Entreprise",
			Address:   contract.CompanyAddress,
			Email:     contract.CompanyEmail,
			SIRET:     contract.CompanySIRET,
			Signature: docdomain.ResolveSignature(s.cfg.AssetBaseURL, contract.CompanySignature),
		},
		Trainee: docdomain.Party{
			Name:      contract.TraineeName,
			Role:      "Stagiaire",
			Email:     contract.TraineeEmail,
			Signature: docdomain.ResolveSignature(s.cfg.AssetBaseURL, contract.TraineeSignature),
		},
		Provider: docdomain.Party{
			Name:      s.cfg.Company.Name,
			Role:      "Organisme de formation",
			Address:   s.cfg.Company.Address,
			Email:     s.cfg.Company.Email,
			Phone:     s.cfg.Company.Phone,
			SIRET:     s.cfg.Company.SIRET,
			Signature: docdomain.ResolveSignature(s.cfg.AssetBaseURL, contract.ProviderSignature),
		},
		CourseTitle: contract.CourseTitle,
		IRATALevel:  contract.IRATALevel,
		StartsAt:    contract.StartsAt,
		EndsAt:      contract.EndsAt,
		Lines:       make([]docdomain.LineItem, 0, len(lines)),
		Clauses:     contract.Clauses,
		StatusLabel: contractdomain.StatusLabels[contract.Status],
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

	return docdomain.DocumentRequest{Kind: docdomain.KindContract, Contract: doc}, nil
}
