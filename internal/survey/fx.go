package survey

import (
	"go.uber.org/fx"

	"github.com/cides/formadesk/internal/survey/service"
)

var Module = fx.Module("survey.service",
	fx.Provide(service.NewService),
)
