// Package seed bootstraps the default accounts for development setups.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	authdomain "github.com/cides/formadesk/internal/auth/domain"
	"github.com/cides/formadesk/internal/auth/password"
)

const (
	defaultAdminEmail    = "admin@cides.fr"
	defaultAdminPassword = "changeme8"
	defaultAdminDisplay  = "Administrateur"
)

// EnsureAdminUser seeds the default admin account when none exists.
func EnsureAdminUser(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		err := tx.WithContext(ctx).Where("email = ?", defaultAdminEmail).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(defaultAdminPassword)
		if err != nil {
			return err
		}

		user = authdomain.User{
			ID:           node.Generate(),
			Email:        defaultAdminEmail,
			DisplayName:  defaultAdminDisplay,
			PasswordHash: &hashed,
			Role:         authdomain.RoleAdmin,
		}
		return tx.WithContext(ctx).Create(&user).Error
	})
}
