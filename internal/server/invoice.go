package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	docdomain "github.com/cides/formadesk/internal/document/domain"
	"github.com/cides/formadesk/internal/providers/email"
)

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (s *Server) GetInvoice(c *gin.Context) {
	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (s *Server) InvoicePDF(c *gin.Context) {
	req, err := s.invoiceSvc.BuildDocument(c.Request.Context(), c.Param("id"))
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

type SendInvoiceRequest struct {
	To string `json:"to"`
}

// SendInvoice renders the invoice and mails it as an attachment. The
// recipient defaults to the client email on file.
func (s *Server) SendInvoice(c *gin.Context) {
	var payload SendInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	req, err := s.invoiceSvc.BuildDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	recipient := strings.TrimSpace(payload.To)
	if recipient == "" && req.Invoice != nil {
		recipient = strings.TrimSpace(req.Invoice.Client.Email)
	}
	if recipient == "" {
		AbortWithError(c, &docdomain.FieldError{Field: "to", Code: "required"})
		return
	}

	result, err := s.documentSvc.RenderDocument(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	subject := "Votre facture " + req.Invoice.Number
	body := "<p>Veuillez trouver votre facture en pièce jointe.</p>"
	if err := s.mailer.SendAttachment(c.Request.Context(), []string{recipient}, subject, body, email.Attachment{
		Filename:    result.Filename,
		ContentType: result.Format.ContentType(),
		Bytes:       result.Bytes,
	}); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent", "to": recipient, "fallback": result.Fallback})
}

// ImportInvoiceScan runs field extraction over an uploaded scan. The
// extracted fields come back for review; nothing is persisted until the
// operator confirms them.
func (s *Server) ImportInvoiceScan(c *gin.Context) {
	file, _, err := c.Request.FormFile("document")
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	fields, err := s.extractor.Extract(c.Request.Context(), buf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fields": fields})
}
