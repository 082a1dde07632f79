package nonconformity

import (
	"go.uber.org/fx"

	"github.com/cides/formadesk/internal/nonconformity/service"
)

var Module = fx.Module("nonconformity.service",
	fx.Provide(service.NewService),
)
