package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cides/formadesk/internal/auth"
	authdomain "github.com/cides/formadesk/internal/auth/domain"
	"github.com/cides/formadesk/internal/auth/session"
	"github.com/cides/formadesk/internal/config"
	"github.com/cides/formadesk/internal/contract"
	contractdomain "github.com/cides/formadesk/internal/contract/domain"
	"github.com/cides/formadesk/internal/document"
	docdomain "github.com/cides/formadesk/internal/document/domain"
	"github.com/cides/formadesk/internal/invoice"
	invoicedomain "github.com/cides/formadesk/internal/invoice/domain"
	"github.com/cides/formadesk/internal/nonconformity"
	ncdomain "github.com/cides/formadesk/internal/nonconformity/domain"
	obslogger "github.com/cides/formadesk/internal/observability/logger"
	"github.com/cides/formadesk/internal/providers"
	"github.com/cides/formadesk/internal/providers/email"
	"github.com/cides/formadesk/internal/providers/ocr"
	"github.com/cides/formadesk/internal/survey"
	surveydomain "github.com/cides/formadesk/internal/survey/domain"
	"github.com/cides/formadesk/internal/trainee"
	traineedomain "github.com/cides/formadesk/internal/trainee/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	document.Module,
	providers.Module,
	invoice.Module,
	contract.Module,
	nonconformity.Module,
	trainee.Module,
	survey.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func registerGin(log *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	return NewEngine(log, registry)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	log      *zap.Logger
	authsvc  authdomain.Service
	sessions *session.Manager

	documentSvc      docdomain.Service
	invoiceSvc       invoicedomain.Service
	contractSvc      contractdomain.Service
	nonconformitySvc ncdomain.Service
	traineeSvc       traineedomain.Service
	surveySvc        surveydomain.Service

	mailer    email.Provider
	extractor ocr.Extractor

	loginLimiter *rateLimiter
}

type ServerParams struct {
	fx.In

	Gin      *gin.Engine
	Cfg      config.Config
	Log      *zap.Logger
	Authsvc  authdomain.Service
	Sessions *session.Manager

	DocumentSvc      docdomain.Service
	InvoiceSvc       invoicedomain.Service
	ContractSvc      contractdomain.Service
	NonconformitySvc ncdomain.Service
	TraineeSvc       traineedomain.Service
	SurveySvc        surveydomain.Service

	Mailer    email.Provider
	Extractor ocr.Extractor
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:   p.Gin,
		cfg:      p.Cfg,
		log:      p.Log.Named("http.server"),
		authsvc:  p.Authsvc,
		sessions: p.Sessions,

		documentSvc:      p.DocumentSvc,
		invoiceSvc:       p.InvoiceSvc,
		contractSvc:      p.ContractSvc,
		nonconformitySvc: p.NonconformitySvc,
		traineeSvc:       p.TraineeSvc,
		surveySvc:        p.SurveySvc,

		mailer:    p.Mailer,
		extractor: p.Extractor,

		loginLimiter: newRateLimiter(10, time.Minute),
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAuthRoutes() {
	grp := s.engine.Group("/api/v1/auth")
	grp.POST("/login", s.Login)
	grp.POST("/logout", s.Logout)
	grp.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1", s.AuthRequired())

	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoice)
	api.GET("/invoices/:id/pdf", s.InvoicePDF)
	api.POST("/invoices/:id/send", s.SendInvoice)
	api.POST("/invoices/import-scan", s.RequireAdmin(), s.ImportInvoiceScan)

	api.GET("/contracts", s.RequireAdmin(), s.ListContracts)
	api.GET("/contracts/:id/pdf", s.RequireAdmin(), s.ContractPDF)

	api.GET("/nonconformities", s.RequireAdmin(), s.ListNonConformities)
	api.GET("/nonconformities/:id/pdf", s.RequireAdmin(), s.NonConformityPDF)

	api.GET("/trainees", s.ListTrainees)
	api.GET("/trainees/:id/disclaimer/pdf", s.TraineeDisclaimerPDF)

	api.GET("/surveys", s.RequireAdmin(), s.ListSurveys)
	api.GET("/surveys/:id/export/pdf", s.RequireAdmin(), s.SurveyExportPDF)

	// ":kind" also carries the snapshot route; gin rejects a static
	// sibling next to a param segment.
	api.POST("/documents/:kind/pdf", s.RenderDocumentPayload)
}
