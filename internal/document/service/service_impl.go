// Package service orchestrates the document pipeline: build markup,
// render through the adapter, degrade to the fallback artifact when the
// renderer is missing.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cides/formadesk/internal/clock"
	"github.com/cides/formadesk/internal/document/domain"
	"github.com/cides/formadesk/internal/document/pdf"
	"github.com/cides/formadesk/internal/document/render"
	"github.com/cides/formadesk/internal/observability/metrics"
)

type ServiceParam struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	Metrics *metrics.RenderMetrics
	Chrome  *pdf.ChromeRenderer
	Raster  *pdf.RasterRenderer
	Pool    *pdf.Pool
}

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	metrics *metrics.RenderMetrics

	builder *render.Builder
	primary domain.Renderer
	raster  domain.Renderer
	pool    *pdf.Pool
	opts    domain.RenderOptions
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:     p.Log.Named("document.service"),
		clock:   p.Clock,
		metrics: p.Metrics,
		builder: render.NewBuilder(),
		primary: p.Chrome,
		raster:  p.Raster,
		pool:    p.Pool,
		opts:    domain.DefaultRenderOptions(),
	}
}

// RenderDocument builds the markup and prints it. Render errors degrade
// to the markup fallback; only markup/validation failures propagate.
func (s *Service) RenderDocument(ctx context.Context, req domain.DocumentRequest) (domain.RenderResult, error) {
	markup, err := s.builder.BuildMarkup(req, s.opts, s.clock.Now())
	if err != nil {
		return domain.RenderResult{}, err
	}

	if err := s.pool.Acquire(ctx); err != nil {
		return domain.RenderResult{}, err
	}
	defer s.pool.Release()

	start := time.Now()
	pdfBytes, err := s.primary.Render(ctx, domain.Source{Markup: markup}, s.opts)
	s.metrics.Duration.WithLabelValues(string(req.Kind)).Observe(time.Since(start).Seconds())

	if err == nil {
		s.metrics.Rendered.WithLabelValues(string(req.Kind), string(domain.FormatPDF)).Inc()
		return domain.RenderResult{
			Bytes:    pdfBytes,
			Format:   domain.FormatPDF,
			Filename: s.Filename(req, domain.FormatPDF),
		}, nil
	}

	if domain.IsRenderError(err) {
		s.metrics.Failures.WithLabelValues(failureReason(err)).Inc()
		s.metrics.Fallbacks.WithLabelValues(string(req.Kind)).Inc()
		s.metrics.Rendered.WithLabelValues(string(req.Kind), string(domain.FormatHTML)).Inc()
		s.log.Warn("renderer degraded to markup fallback",
			zap.String("kind", string(req.Kind)),
			zap.Error(err))
		return domain.RenderResult{
			Bytes:    []byte(markup),
			Format:   domain.FormatHTML,
			Fallback: true,
			Filename: s.Filename(req, domain.FormatHTML),
		}, nil
	}

	return domain.RenderResult{}, err
}

// AssembleSnapshot runs the raster variant over a client DOM capture.
func (s *Service) AssembleSnapshot(ctx context.Context, req domain.SnapshotRequest) (domain.RenderResult, error) {
	if _, ok := domain.ParseKind(string(req.Kind)); !ok {
		return domain.RenderResult{}, &domain.FieldError{Field: "kind", Code: "unknown_kind"}
	}
	if len(req.Image) == 0 {
		return domain.RenderResult{}, &domain.FieldError{Field: "image", Code: "required"}
	}

	pdfBytes, err := s.raster.Render(ctx, domain.Source{
		Snapshot:       req.Image,
		SnapshotFormat: req.ImageFormat,
	}, s.opts)
	if err != nil {
		return domain.RenderResult{}, err
	}

	s.metrics.Rendered.WithLabelValues(string(req.Kind), string(domain.FormatPDF)).Inc()
	return domain.RenderResult{
		Bytes:    pdfBytes,
		Format:   domain.FormatPDF,
		Filename: snapshotFilename(req),
	}, nil
}

// Filename derives the attachment name from the identifying fields.
// Same logical document, same name, safe for any filesystem.
func (s *Service) Filename(req domain.DocumentRequest, format domain.Format) string {
	number, subject := req.Identifier()
	base := slug.Make(strings.TrimSpace(number + " " + subject))
	if base == "" {
		base = string(req.Kind)
	}
	return base + "." + format.Extension()
}

func snapshotFilename(req domain.SnapshotRequest) string {
	base := slug.Make(strings.TrimSpace(string(req.Kind) + " " + req.Identifier))
	if base == "" {
		base = string(req.Kind)
	}
	return base + "." + domain.FormatPDF.Extension()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrRendererUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrRenderTimeout):
		return "timeout"
	default:
		return "failure"
	}
}
