package contract

import (
	"go.uber.org/fx"

	"github.com/cides/formadesk/internal/contract/service"
)

var Module = fx.Module("contract.service",
	fx.Provide(service.NewService),
)
