// Package migration keeps the schema usable out of the box for local
// and self-hosted deployments. All tables are created automatically on
// startup.
package migration

import (
	"errors"

	"gorm.io/gorm"

	authdomain "github.com/cides/formadesk/internal/auth/domain"
	contractdomain "github.com/cides/formadesk/internal/contract/domain"
	invoicedomain "github.com/cides/formadesk/internal/invoice/domain"
	ncdomain "github.com/cides/formadesk/internal/nonconformity/domain"
	surveydomain "github.com/cides/formadesk/internal/survey/domain"
	traineedomain "github.com/cides/formadesk/internal/trainee/domain"
)

func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&authdomain.User{},
		&authdomain.Session{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceLine{},
		&contractdomain.Contract{},
		&contractdomain.ContractLine{},
		&ncdomain.NonConformity{},
		&traineedomain.Trainee{},
		&traineedomain.Disclaimer{},
		&surveydomain.Survey{},
		&surveydomain.SurveyAnswer{},
	)
}
