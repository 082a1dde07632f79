package domain

import "context"

// Source is what a renderer variant consumes: either self-contained
// markup, or a client-captured DOM snapshot raster. Exactly one is set.
type Source struct {
	Markup string

	Snapshot []byte
	// SnapshotFormat is "png" or "jpeg".
	SnapshotFormat string
}

// Renderer converts a source into fixed-page document bytes. The chrome
// adapter (markup) and the raster assembler (snapshot) both implement
// it, so call sites never know which variant produced the result.
type Renderer interface {
	Render(ctx context.Context, src Source, opts RenderOptions) ([]byte, error)
}

// SnapshotRequest assembles a client-captured DOM raster into a document.
type SnapshotRequest struct {
	Kind       Kind
	Identifier string
	Image      []byte
	// ImageFormat is "png" or "jpeg".
	ImageFormat string
}

// Service orchestrates build, render, fallback and naming.
type Service interface {
	RenderDocument(ctx context.Context, req DocumentRequest) (RenderResult, error)
	AssembleSnapshot(ctx context.Context, req SnapshotRequest) (RenderResult, error)
	Filename(req DocumentRequest, format Format) string
}
