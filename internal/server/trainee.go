package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListTrainees(c *gin.Context) {
	trainees, err := s.traineeSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainees": trainees})
}

func (s *Server) TraineeDisclaimerPDF(c *gin.Context) {
	req, err := s.traineeSvc.BuildDisclaimerDocument(c.Request.Context(), c.Param("id"))
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
