package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListSurveys(c *gin.Context) {
	surveys, err := s.surveySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"surveys": surveys})
}

func (s *Server) SurveyExportPDF(c *gin.Context) {
	req, err := s.surveySvc.BuildExport(c.Request.Context(), c.Param("id"))
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
