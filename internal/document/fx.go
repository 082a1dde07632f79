package document

import (
	"go.uber.org/fx"

	"github.com/cides/formadesk/internal/config"
	"github.com/cides/formadesk/internal/document/pdf"
	"github.com/cides/formadesk/internal/document/service"
)

var Module = fx.Module("document.service",
	fx.Provide(pdf.NewChromeRenderer),
	fx.Provide(pdf.NewRasterRenderer),
	fx.Provide(providePool),
	fx.Provide(service.NewService),
)

func providePool(cfg config.Config) *pdf.Pool {
	return pdf.NewPool(pdf.ResolvePoolSize(cfg.Renderer.Workers))
}
