package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cides/formadesk/internal/config"
	contractdomain "github.com/cides/formadesk/internal/contract/domain"
	docdomain "github.com/cides/formadesk/internal/document/domain"
	"github.com/cides/formadesk/pkg/repository"
)

func newTestService(t *testing.T) (*Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&contractdomain.Contract{}, &contractdomain.ContractLine{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{
		Company: config.CompanyConfig{
			Name:    "CI.DES",
			Address: "1 rue de la Corderie, 17000 La Rochelle",
			Email:   "contact@cides.fr",
			SIRET:   "123 456 789 00012",
		},
		AssetBaseURL: "https://assets.cides.fr",
	}

	svc := &Service{
		db:  db,
		log: zap.NewNop(),
		cfg: cfg,

		contractrepo: repository.ProvideStore[contractdomain.Contract](db),
		linerepo:     repository.ProvideStore[contractdomain.ContractLine](db),
	}
	return svc, node
}

func seedContract(t *testing.T, svc *Service, node *snowflake.Node) *contractdomain.Contract {
	t.Helper()

	contract := &contractdomain.Contract{
		ID:     node.Generate(),
		Number: "CTR-2024-004",
		Status: contractdomain.ContractStatusSigned,

		CompanyName:    "ACME Travaux",
		CompanyAddress: "12 avenue des Cordistes, 75011 Paris",
		CompanyEmail:   "rh@acme-travaux.fr",
		CompanySIRET:   "987 654 321 00021",

		TraineeName:  "Jean Dupont",
		TraineeEmail: "jean.dupont@acme-travaux.fr",

		CourseTitle: "Formation cordiste IRATA",
		IRATALevel:  "Niveau 1",

		CompanySignature: "signatures/acme.png",
		TraineeSignature: "data:image/png;base64,AAAA",

		Clauses: datatypes.NewJSONSlice([]string{"Article 1", "Article 2"}),
	}
	require.NoError(t, svc.contractrepo.Create(context.Background(), contract))

	require.NoError(t, svc.linerepo.Create(context.Background(), &contractdomain.ContractLine{
		ID:             node.Generate(),
		ContractID:     contract.ID,
		Reference:      "CI.IFF",
		Designation:    "Frais de formation",
		Quantity:       1,
		UnitPriceCents: 350000,
		TaxRate:        20,
	}))
	return contract
}

func TestGetByIDInvalid(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "not-a-snowflake")
	assert.ErrorIs(t, err, contractdomain.ErrInvalidContractID)
}

func TestGetByIDMissing(t *testing.T) {
	svc, node := newTestService(t)

	_, err := svc.GetByID(context.Background(), node.Generate().String())
	assert.ErrorIs(t, err, contractdomain.ErrNotFound)
}

func TestBuildDocument(t *testing.T) {
	svc, node := newTestService(t)
	contract := seedContract(t, svc, node)

	req, err := svc.BuildDocument(context.Background(), contract.ID.String())
	require.NoError(t, err)

	assert.Equal(t, docdomain.KindContract, req.Kind)
	require.NotNil(t, req.Contract)

	doc := req.Contract
	assert.Equal(t, "CTR-2024-004", doc.Number)
	assert.Equal(t, "Signée", doc.StatusLabel)
	assert.Equal(t, "Formation cordiste IRATA", doc.CourseTitle)
	assert.Equal(t, []string{"Article 1", "Article 2"}, doc.Clauses)

	assert.Equal(t, "Entreprise", doc.Company.Role)
	assert.Equal(t, "Stagiaire", doc.Trainee.Role)
	assert.Equal(t, "Organisme de formation", doc.Provider.Role)
	assert.Equal(t, "CI.DES", doc.Provider.Name)

	// Stored asset paths resolve against the asset base, data URIs pass
	// through, absent references stay nil.
	require.NotNil(t, doc.Company.Signature)
	assert.Equal(t, "https://assets.cides.fr/signatures/acme.png", doc.Company.Signature.URL)
	require.NotNil(t, doc.Trainee.Signature)
	assert.Equal(t, "data:image/png;base64,AAAA", doc.Trainee.Signature.DataURI)
	assert.Nil(t, doc.Provider.Signature)

	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "CI.IFF", doc.Lines[0].Reference)
	assert.InDelta(t, 3500, doc.Lines[0].UnitPrice, 1e-9)
}
