package trainee

import (
	"go.uber.org/fx"

	"github.com/cides/formadesk/internal/trainee/service"
)

var Module = fx.Module("trainee.service",
	fx.Provide(service.NewService),
)
