package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/pkg/auth"
	"github.com/emrek/registra/internal/pkg/logger"
)

// callerKey is the gin context key the resolved policy caller is stored under.
const callerKey = "caller"

// RequireAuth validates the bearer token and stores the resolved caller in
// the request context. Requests without a valid session are rejected.
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := resolveCaller(c, jwtService)
		if err != nil {
			code := dto.ErrorCodeAuthenticationRequired
			if err == auth.ErrExpiredToken {
				code = dto.ErrorCodeTokenExpired
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.NewErrorDetail(code, "authentication required")))
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// OptionalAuth resolves a caller when a valid token is present and falls back
// to the anonymous caller otherwise. Used on publicly readable routes so the
// policy layer still knows who is asking.
func OptionalAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := resolveCaller(c, jwtService)
		if err != nil {
			caller = policy.AnonymousCaller()
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

func resolveCaller(c *gin.Context, jwtService *auth.JWTService) (policy.Caller, error) {
	token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return policy.Caller{}, err
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		logger.Debug().Err(err).Msg("Token validation failed")
		return policy.Caller{}, err
	}

	return policy.Caller{
		ID:         claims.UserID,
		Role:       models.RoleType(claims.Role),
		Department: claims.Department,
	}, nil
}

// CallerFromContext returns the policy caller resolved by the auth
// middleware, or the anonymous caller if none was set.
func CallerFromContext(c *gin.Context) policy.Caller {
	if value, exists := c.Get(callerKey); exists {
		if caller, ok := value.(policy.Caller); ok {
			return caller
		}
	}
	return policy.AnonymousCaller()
}
