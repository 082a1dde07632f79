package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cides/formadesk/internal/config"
	docdomain "github.com/cides/formadesk/internal/document/domain"
	traineedomain "github.com/cides/formadesk/internal/trainee/domain"
	"github.com/cides/formadesk/pkg/repository"
)

func newTestService(t *testing.T) (*Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&traineedomain.Trainee{}, &traineedomain.Disclaimer{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := &Service{
		db:  db,
		log: zap.NewNop(),
		cfg: config.Config{
			Company:      config.CompanyConfig{Name: "CI.DES"},
			AssetBaseURL: "https://assets.cides.fr",
		},

		traineerepo:    repository.ProvideStore[traineedomain.Trainee](db),
		disclaimerrepo: repository.ProvideStore[traineedomain.Disclaimer](db),
	}
	return svc, node
}

func seedTrainee(t *testing.T, svc *Service, node *snowflake.Node) *traineedomain.Trainee {
	t.Helper()

	trainee := &traineedomain.Trainee{
		ID:        node.Generate(),
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.fr",
	}
	require.NoError(t, svc.traineerepo.Create(context.Background(), trainee))
	return trainee
}

func TestGetByIDInvalid(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "not-a-snowflake")
	assert.ErrorIs(t, err, traineedomain.ErrInvalidTraineeID)
}

func TestBuildDisclaimerDocumentNoWaiver(t *testing.T) {
	svc, node := newTestService(t)
	trainee := seedTrainee(t, svc, node)

	_, err := svc.BuildDisclaimerDocument(context.Background(), trainee.ID.String())
	assert.ErrorIs(t, err, traineedomain.ErrDisclaimerNotFound)
}

func TestBuildDisclaimerDocumentPicksMostRecentWaiver(t *testing.T) {
	svc, node := newTestService(t)
	trainee := seedTrainee(t, svc, node)

	signed := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	older := &traineedomain.Disclaimer{
		ID:           node.Generate(),
		TraineeID:    trainee.ID,
		Number:       "DEC-2024-011",
		SessionTitle: "Session cordiste mars",
		CreatedAt:    time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC),
	}
	newer := &traineedomain.Disclaimer{
		ID:           node.Generate(),
		TraineeID:    trainee.ID,
		Number:       "DEC-2024-027",
		SessionTitle: "Session cordiste mai",
		Clauses:      datatypes.NewJSONSlice([]string{"Clause 1"}),
		SignedAt:     &signed,
		Signature:    "signatures/dupont.png",
		CreatedAt:    time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC),
	}
	// Inserted newest-first so the pick cannot ride on insertion order.
	require.NoError(t, svc.disclaimerrepo.Create(context.Background(), newer))
	require.NoError(t, svc.disclaimerrepo.Create(context.Background(), older))

	req, err := svc.BuildDisclaimerDocument(context.Background(), trainee.ID.String())
	require.NoError(t, err)

	assert.Equal(t, docdomain.KindDisclaimer, req.Kind)
	require.NotNil(t, req.Disclaimer)

	doc := req.Disclaimer
	assert.Equal(t, "DEC-2024-027", doc.Number)
	assert.Equal(t, "Session cordiste mai", doc.SessionTitle)
	assert.Equal(t, []string{"Clause 1"}, doc.Clauses)
	assert.Equal(t, &signed, doc.SignedAt)

	assert.Equal(t, "Jean Dupont", doc.Trainee.Name)
	assert.Equal(t, "Stagiaire", doc.Trainee.Role)
	require.NotNil(t, doc.Trainee.Signature)
	assert.Equal(t, "https://assets.cides.fr/signatures/dupont.png", doc.Trainee.Signature.URL)

	assert.Equal(t, "CI.DES", doc.Provider.Name)
	assert.Nil(t, doc.Provider.Signature)
}
