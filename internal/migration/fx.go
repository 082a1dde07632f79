package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/cides/formadesk/internal/config"
	"github.com/cides/formadesk/internal/seed"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if err := RunMigrations(conn); err != nil {
			return err
		}

		if cfg.Environment == config.EnvDevelopment {
			return seed.EnsureAdminUser(conn)
		}
		return nil
	}),
)
