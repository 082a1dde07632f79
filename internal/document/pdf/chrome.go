package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"github.com/cides/formadesk/internal/config"
	"github.com/cides/formadesk/internal/document/domain"
)

// Adapter lifecycle states. Every render walks
// idle -> discovering -> launching -> rendering -> closed; failures jump
// to failed but still pass through closed before returning.
type renderState string

const (
	stateIdle        renderState = "idle"
	stateDiscovering renderState = "discovering"
	stateLaunching   renderState = "launching"
	stateRendering   renderState = "rendering"
	stateFailed      renderState = "failed"
	stateClosed      renderState = "closed"
)

// Fixed viewport applied before content load so layout is independent of
// the host display.
const (
	viewportWidth  = 1280
	viewportHeight = 1810
)

const defaultRenderTimeout = 30 * time.Second

// ChromeRenderer prints markup to PDF through a headless browser. One
// browser process per render; nothing is reused across requests.
type ChromeRenderer struct {
	discovery *Discovery
	timeout   time.Duration
	noSandbox bool
	log       *zap.Logger
}

var _ domain.Renderer = (*ChromeRenderer)(nil)

func NewChromeRenderer(cfg config.Config, log *zap.Logger) *ChromeRenderer {
	timeout := time.Duration(cfg.Renderer.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &ChromeRenderer{
		discovery: NewDiscovery(cfg),
		timeout:   timeout,
		noSandbox: cfg.Renderer.NoSandbox,
		log:       log.Named("renderer.chrome"),
	}
}

// Render converts markup into PDF bytes. The browser process is always
// torn down before returning, success or failure, even when the caller
// context is already canceled.
func (r *ChromeRenderer) Render(ctx context.Context, src domain.Source, opts domain.RenderOptions) (out []byte, err error) {
	if src.Markup == "" {
		return nil, fmt.Errorf("%w: chrome renderer needs markup input", domain.ErrRenderFailure)
	}

	state := stateIdle
	defer func() {
		if err != nil {
			r.log.Warn("render failed",
				zap.String("state", string(state)),
				zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	state = stateDiscovering
	bin, err := r.discovery.Resolve()
	if err != nil {
		state = stateFailed
		return nil, err
	}

	state = stateLaunching
	l := launcher.New().
		Bin(bin).
		Headless(true).
		NoSandbox(r.noSandbox).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("disable-extensions").
		Set("hide-scrollbars")

	controlURL, err := l.Launch()
	if err != nil {
		state = stateFailed
		return nil, fmt.Errorf("%w: launch: %v", domain.ErrRendererUnavailable, err)
	}
	// Kill the browser process and wipe its temp profile no matter how
	// the render ends. This is the Closed transition.
	defer func() {
		l.Kill()
		l.Cleanup()
		state = stateClosed
	}()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		state = stateFailed
		return nil, r.classify(ctx, fmt.Errorf("connect: %w", err))
	}
	defer func() { _ = browser.Close() }()

	tmpPath, cleanup, err := writeTempMarkup(src.Markup)
	if err != nil {
		state = stateFailed
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}
	defer cleanup()

	state = stateRendering
	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		state = stateFailed
		return nil, r.classify(ctx, fmt.Errorf("page create: %w", err))
	}
	defer func() { _ = page.Close() }()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		state = stateFailed
		return nil, r.classify(ctx, fmt.Errorf("viewport: %w", err))
	}

	// "Script parsed" is not enough: wait for load plus network idle so
	// remote signature/logo images are in place before printing.
	if err := page.WaitLoad(); err != nil {
		state = stateFailed
		return nil, r.classify(ctx, fmt.Errorf("load: %w", err))
	}
	if err := page.WaitIdle(r.timeout); err != nil {
		state = stateFailed
		return nil, r.classify(ctx, fmt.Errorf("idle: %w", err))
	}

	reader, err := page.PDF(printOptions(opts))
	if err != nil {
		state = stateFailed
		return nil, r.classify(ctx, fmt.Errorf("print: %w", err))
	}

	pdfBytes, err := io.ReadAll(reader)
	if err != nil {
		state = stateFailed
		return nil, r.classify(ctx, fmt.Errorf("read stream: %w", err))
	}
	if len(pdfBytes) == 0 {
		state = stateFailed
		return nil, fmt.Errorf("%w: renderer produced empty output", domain.ErrRenderFailure)
	}

	return pdfBytes, nil
}

// classify folds timeouts into ErrRenderTimeout and everything else into
// ErrRenderFailure.
func (r *ChromeRenderer) classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrRenderTimeout, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		// Client went away; cleanup still ran via the deferred guards.
		return fmt.Errorf("%w: canceled: %v", domain.ErrRenderFailure, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
}

func printOptions(opts domain.RenderOptions) *proto.PagePrintToPDF {
	width, height := opts.PageSize()
	margin := opts.MarginInches
	if margin <= 0 {
		margin = domain.DefaultMarginInches
	}

	return &proto.PagePrintToPDF{
		Landscape:       opts.Orientation != domain.OrientationPortrait,
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: opts.PrintBackground,
	}
}

func writeTempMarkup(markup string) (string, func(), error) {
	f, err := os.CreateTemp("", "formadesk-*.html")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.WriteString(markup); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

func floatPtr(v float64) *float64 { return &v }
