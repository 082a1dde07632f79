package service

import (
	"context"
	"sort"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	docdomain "github.com/cides/formadesk/internal/document/domain"
	surveydomain "github.com/cides/formadesk/internal/survey/domain"
	"github.com/cides/formadesk/pkg/repository"
)

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	surveyrepo repository.Repository[surveydomain.Survey]
	answerrepo repository.Repository[surveydomain.SurveyAnswer]
}

func NewService(p ServiceParam) surveydomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("survey.service"),

		surveyrepo: repository.ProvideStore[surveydomain.Survey](p.DB),
		answerrepo: repository.ProvideStore[surveydomain.SurveyAnswer](p.DB),
	}
}

func (s *Service) List(ctx context.Context) ([]*surveydomain.Survey, error) {
	return s.surveyrepo.Find(ctx, &surveydomain.Survey{})
}

func (s *Service) GetByID(ctx context.Context, id string) (*surveydomain.Survey, error) {
	surveyID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, surveydomain.ErrInvalidSurveyID
	}

	survey, err := s.surveyrepo.FindOne(ctx, &surveydomain.Survey{ID: surveyID})
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, surveydomain.ErrNotFound
	}
	return survey, nil
}

func (s *Service) BuildExport(ctx context.Context, id string) (docdomain.DocumentRequest, error) {
	survey, err := s.GetByID(ctx, id)
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}

	answers, err := s.answerrepo.Find(ctx, &surveydomain.SurveyAnswer{SurveyID: survey.ID})
	if err != nil {
		return docdomain.DocumentRequest{}, err
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].Position < answers[j].Position })

	doc := &docdomain.SurveyExportDocument{
		Number:       survey.Number,
		Title:        survey.Title,
		SessionTitle: survey.SessionTitle,
		Respondent: docdomain.Party{
			Name:  survey.RespondentName,
			Email: survey.RespondentEmail,
		},
		ConductedAt: survey.ConductedAt,
		Answers:     make([]docdomain.SurveyAnswer, 0, len(answers)),
	}

	for _, a := range answers {
		doc.Answers = append(doc.Answers, docdomain.SurveyAnswer{
			Question: a.Question,
			Rating:   a.Rating,
			Comment:  a.Comment,
		})
	}

	return docdomain.DocumentRequest{Kind: docdomain.KindSurveyExport, SurveyExport: doc}, nil
}
