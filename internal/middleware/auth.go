package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/svernekar/examportal/config"
	"github.com/svernekar/examportal/internal/auth"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/model"
)

const claimsKey = "claims"

// AuthRequired verifies the Bearer token on every request and stores the
// claims in the context. Role gating never trusts the client's own decode.
func AuthRequired(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization token"})
			return
		}

		claims, err := auth.Parse(tokenString, cfg.JWT.Secret)
		if err != nil {
			log.Warn().Err(err).Msg("Rejected request with invalid token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireRoles allows only the listed roles through. Admins pass every gate.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := ClaimsFromContext(ctx)
		if claims == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization token"})
			return
		}

		if claims.Role == model.RoleAdmin {
			ctx.Next()
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				ctx.Next()
				return
			}
		}

		log.Warn().Str("userID", claims.ID).Str("role", string(claims.Role)).Str("path", ctx.FullPath()).Msg("Role not allowed")
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Forbidden"})
	}
}

// ClaimsFromContext returns the verified claims set by AuthRequired, or nil.
func ClaimsFromContext(ctx *gin.Context) *auth.Claims {
	value, exists := ctx.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
