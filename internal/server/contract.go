package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListContracts(c *gin.Context) {
	contracts, err := s.contractSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

func (s *Server) ContractPDF(c *gin.Context) {
	req, err := s.contractSvc.BuildDocument(c.Request.Context(), c.Param("id"))
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
