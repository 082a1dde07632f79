package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cides/formadesk/internal/document/domain"
)

const mmPerInch = 25.4

// A4 height in millimeters, used to size the snapshot row.
const pageHeightMM = 297.0

// RasterRenderer assembles a client-captured DOM snapshot into a
// fixed-page PDF. It is the browser-less variant of the renderer: same
// page size and margin contract as the chrome adapter, best-effort
// visual fidelity instead of text layout.
type RasterRenderer struct{}

var _ domain.Renderer = (*RasterRenderer)(nil)

func NewRasterRenderer() *RasterRenderer { return &RasterRenderer{} }

func (r *RasterRenderer) Render(ctx context.Context, src domain.Source, opts domain.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(src.Snapshot) == 0 {
		return nil, fmt.Errorf("%w: raster renderer needs a snapshot input", domain.ErrRenderFailure)
	}

	ext, err := snapshotExtension(src.SnapshotFormat)
	if err != nil {
		return nil, err
	}

	margin := opts.MarginInches
	if margin <= 0 {
		margin = domain.DefaultMarginInches
	}
	marginMM := margin * mmPerInch

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(marginMM).
		WithTopMargin(marginMM).
		WithRightMargin(marginMM).
		WithBottomMargin(marginMM).
		Build()

	m := maroto.New(cfg)
	m.AddRow(pageHeightMM-2*marginMM,
		image.NewFromBytesCol(12, src.Snapshot, ext, props.Rect{
			Center:  true,
			Percent: 100,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot assembly: %v", domain.ErrRenderFailure, err)
	}

	out := doc.GetBytes()
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: snapshot assembly produced empty output", domain.ErrRenderFailure)
	}
	return out, nil
}

func snapshotExtension(format string) (extension.Type, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "png", "":
		return extension.Png, nil
	case "jpg", "jpeg":
		return extension.Jpg, nil
	default:
		return "", fmt.Errorf("%w: unsupported snapshot format %q", domain.ErrRenderFailure, format)
	}
}
