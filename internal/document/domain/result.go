package domain

// Format tags what the result bytes actually are. Callers distinguish a
// real PDF from the markup fallback by this tag, never by sniffing.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// ContentType returns the media type matching the payload.
func (f Format) ContentType() string {
	if f == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "application/pdf"
}

// Extension returns the filename extension matching the payload.
func (f Format) Extension() string {
	if f == FormatHTML {
		return "html"
	}
	return "pdf"
}

// RenderResult is the deliverable of one render: either produced PDF
// bytes, or the original markup flagged as a fallback.
type RenderResult struct {
	Bytes    []byte
	Format   Format
	Fallback bool
	Filename string
}
