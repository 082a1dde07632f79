package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListNonConformities(c *gin.Context) {
	items, err := s.nonconformitySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nonconformities": items})
}

func (s *Server) NonConformityPDF(c *gin.Context) {
	req, err := s.nonconformitySvc.BuildDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.documentSvc.RenderDocument(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writeDocument(c, result)
}
