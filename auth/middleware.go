package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jobtalk/contract"
	"jobtalk/domain"
	"jobtalk/errors"
)

const identityKey = "identity"

// Middleware handles JWT validation for incoming HTTP calls.
// It rejects missing/invalid credentials and blocked identities, and injects
// the resolved identity into the request context for downstream handlers.
func Middleware(provider contract.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Expecting the standard "Bearer <token>" format.
		tokenStr := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		identity, err := provider.ResolveCredential(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(errors.MapToHTTPStatus(err), gin.H{"message": err.Error()})
			return
		}
		if identity.Blocked {
			c.AbortWithStatusJSON(errors.MapToHTTPStatus(errors.ErrUserBlocked),
				gin.H{"message": errors.ErrUserBlocked.Error()})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom extracts the identity stored by Middleware.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}
