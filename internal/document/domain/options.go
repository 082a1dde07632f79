package domain

// Page format constants. The pipeline prints a single physical page size.
const (
	PageFormatA4 = "a4"

	OrientationPortrait = "portrait"

	// DefaultMarginInches applies to all four sides.
	DefaultMarginInches = 0.4

	// A4 dimensions in inches, as handed to the renderer.
	PageWidthInchesA4  = 8.27
	PageHeightInchesA4 = 11.69
)

// RenderOptions configures the physical page. Identical options and an
// identical request must yield identical output under a frozen clock.
type RenderOptions struct {
	PageFormat      string
	Orientation     string
	MarginInches    float64
	PrintBackground bool
}

// DefaultRenderOptions returns the fixed A4 portrait contract shared by
// every document kind.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		PageFormat:      PageFormatA4,
		Orientation:     OrientationPortrait,
		MarginInches:    DefaultMarginInches,
		PrintBackground: true,
	}
}

// PageSize returns the physical page dimensions in inches.
func (o RenderOptions) PageSize() (width, height float64) {
	// A4 is the only supported format.
	return PageWidthInchesA4, PageHeightInchesA4
}
