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

	docdomain "github.com/cides/formadesk/internal/document/domain"
	surveydomain "github.com/cides/formadesk/internal/survey/domain"
	"github.com/cides/formadesk/pkg/repository"
)

func newTestService(t *testing.T) (*Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&surveydomain.Survey{}, &surveydomain.SurveyAnswer{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := &Service{
		db:  db,
		log: zap.NewNop(),

		surveyrepo: repository.ProvideStore[surveydomain.Survey](db),
		answerrepo: repository.ProvideStore[surveydomain.SurveyAnswer](db),
	}
	return svc, node
}

func TestGetByIDInvalid(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "not-a-snowflake")
	assert.ErrorIs(t, err, surveydomain.ErrInvalidSurveyID)
}

func TestGetByIDMissing(t *testing.T) {
	svc, node := newTestService(t)

	_, err := svc.GetByID(context.Background(), node.Generate().String())
	assert.ErrorIs(t, err, surveydomain.ErrNotFound)
}

func TestBuildExportOrdersAnswersByPosition(t *testing.T) {
	svc, node := newTestService(t)

	survey := &surveydomain.Survey{
		ID:             node.Generate(),
		Number:         "ENQ-2024-003",
		Title:          "Enquête de satisfaction",
		SessionTitle:   "Session cordiste mai",
		RespondentName: "Jean Dupont",
	}
	require.NoError(t, svc.surveyrepo.Create(context.Background(), survey))

	rating := 4.5
	// Inserted out of order; the export must follow Position.
	answers := []*surveydomain.SurveyAnswer{
		{ID: node.Generate(), SurveyID: survey.ID, Position: 3, Question: "Commentaire libre", Comment: "Très bonne formation."},
		{ID: node.Generate(), SurveyID: survey.ID, Position: 1, Question: "Qualité des supports", Rating: &rating},
		{ID: node.Generate(), SurveyID: survey.ID, Position: 2, Question: "Disponibilité du formateur", Rating: &rating},
	}
	for _, a := range answers {
		require.NoError(t, svc.answerrepo.Create(context.Background(), a))
	}

	req, err := svc.BuildExport(context.Background(), survey.ID.String())
	require.NoError(t, err)

	assert.Equal(t, docdomain.KindSurveyExport, req.Kind)
	require.NotNil(t, req.SurveyExport)

	doc := req.SurveyExport
	assert.Equal(t, "ENQ-2024-003", doc.Number)
	assert.Equal(t, "Jean Dupont", doc.Respondent.Name)

	require.Len(t, doc.Answers, 3)
	assert.Equal(t, "Qualité des supports", doc.Answers[0].Question)
	assert.Equal(t, "Disponibilité du formateur", doc.Answers[1].Question)
	assert.Equal(t, "Commentaire libre", doc.Answers[2].Question)

	// Free-text answers carry no score.
	require.NotNil(t, doc.Answers[0].Rating)
	assert.InDelta(t, 4.5, *doc.Answers[0].Rating, 1e-9)
	assert.Nil(t, doc.Answers[2].Rating)
}
