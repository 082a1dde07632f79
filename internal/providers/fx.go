package providers

import (
	"go.uber.org/fx"

	"github.com/cides/formadesk/internal/providers/email"
	"github.com/cides/formadesk/internal/providers/ocr"
)

var Module = fx.Module("providers",
	email.Module,
	ocr.Module,
)
