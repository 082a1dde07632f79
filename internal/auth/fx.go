package auth

import (
	"go.uber.org/fx"

	"github.com/cides/formadesk/internal/auth/service"
	"github.com/cides/formadesk/internal/auth/session"
)

var Module = fx.Module("auth.service",
	fx.Provide(
		service.NewService,
		session.NewManager,
	),
)
