package server

import (
	"github.com/gin-gonic/gin"

	docdomain "github.com/cides/formadesk/internal/document/domain"
)

// SnapshotPayload carries a client-captured DOM raster. The image is
// base64 in JSON, decoded to bytes by the binder.
type SnapshotPayload struct {
	Kind        string `json:"kind"`
	Identifier  string `json:"identifier"`
	Image       []byte `json:"image"`
	ImageFormat string `json:"image_format"`
}

// RenderDocumentPayload renders an ad-hoc document payload posted by a
// client. The "snapshot" kind selects the raster assembly variant.
func (s *Server) RenderDocumentPayload(c *gin.Context) {
	kindRaw := c.Param("kind")
	if kindRaw == "snapshot" {
		s.assembleSnapshot(c)
		return
	}

	kind, ok := docdomain.ParseKind(kindRaw)
	if !ok {
		AbortWithError(c, &docdomain.FieldError{Field: "kind", Code: "unknown_kind"})
		return
	}
	if kind.AdminOnly() && !s.identity(c).User.IsAdmin() {
		AbortWithError(c, ErrForbidden)
		return
	}

	var req docdomain.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.Kind = kind

	result, err := s.documentSvc.RenderDocument(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writeDocument(c, result)
}

func (s *Server) assembleSnapshot(c *gin.Context) {
	var payload SnapshotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	kind, ok := docdomain.ParseKind(payload.Kind)
	if !ok {
		AbortWithError(c, &docdomain.FieldError{Field: "kind", Code: "unknown_kind"})
		return
	}
	if kind.AdminOnly() && !s.identity(c).User.IsAdmin() {
		AbortWithError(c, ErrForbidden)
		return
	}

	result, err := s.documentSvc.AssembleSnapshot(c.Request.Context(), docdomain.SnapshotRequest{
		Kind:        kind,
		Identifier:  payload.Identifier,
		Image:       payload.Image,
		ImageFormat: payload.ImageFormat,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writeDocument(c, result)
}
