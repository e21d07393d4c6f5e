package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httperr "github.com/veyra-lab/project-veyra/internal/core/errors"
)

// RequireRoles returns middleware that authenticates the bearer token and
// admits only the listed roles: 401 when the token is missing, malformed,
// or expired, 403 when it verifies but carries the wrong role.
func RequireRoles(tokens *TokenService, roles ...Role) gin.HandlerFunc {
	allowed := make(map[Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, err := bearerClaims(c.GetHeader("Authorization"), tokens)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnauthorizedError,
				Message:   "Authentication required",
				Details:   err.Error(),
			})
			return
		}

		if _, ok := allowed[Role(claims.Role)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.ErrorResponse{
				ErrorType: httperr.HttpForbiddenError,
				Message:   fmt.Sprintf("Role %q does not grant access to this resource", claims.Role),
			})
			return
		}

		c.Next()
	}
}

// bearerClaims extracts and verifies the token from an Authorization header
// value.
func bearerClaims(header string, tokens *TokenService) (*Claims, error) {
	if header == "" {
		return nil, errors.New("missing authorization header")
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil, errors.New("authorization header must use Bearer scheme")
	}
	return tokens.Verify(token)
}
