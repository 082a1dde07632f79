package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	docdomain "github.com/cides/formadesk/internal/document/domain"
)

// HeaderFallback marks a response whose body is the markup fallback
// rather than a real PDF. Clients print it browser-side.
const HeaderFallback = "X-Document-Fallback"

// writeDocument sends a render result as a file attachment. The
// Content-Type always matches the true format of the bytes, markup
// fallbacks included.
func writeDocument(c *gin.Context, result docdomain.RenderResult) {
	if result.Fallback {
		c.Header(HeaderFallback, "markup")
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.Format.ContentType(), result.Bytes)
}
