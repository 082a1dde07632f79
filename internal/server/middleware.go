package server

import (
	"github.com/gin-gonic/gin"

	authdomain "github.com/cides/formadesk/internal/auth/domain"
)

const contextIdentityKey = "identity"

// AuthRequired authenticates the session cookie and attaches the
// identity to the request context. Unauthenticated requests are
// rejected before any document source is touched.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		identity, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextIdentityKey, identity)
		c.Next()
	}
}

// RequireAdmin gates admin-only documents. Runs after AuthRequired.
func (s *Server) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.identity(c).User.IsAdmin() {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

func (s *Server) identity(c *gin.Context) *authdomain.Identity {
	if v, ok := c.Get(contextIdentityKey); ok {
		if identity, ok := v.(*authdomain.Identity); ok {
			return identity
		}
	}
	return &authdomain.Identity{}
}
