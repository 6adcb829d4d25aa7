package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/apponislam/vinies709-backend/domain"
)

// AuthMW wraps the token service and user repository for middleware
type AuthMW struct {
	tokenSvc domain.TokenService
	userRepo domain.UserRepository
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, userRepo domain.UserRepository) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc, userRepo: userRepo}
}

// WithJWT returns the JWT middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.userRepo)
}

// AuthMiddleware verifies the Bearer access token, then re-fetches the
// account so deactivation and role changes take effect immediately:
// a token whose role claim no longer matches the live record is
// rejected, in this one place rather than ad hoc per handler.
func AuthMiddleware(tokenSvc domain.TokenService, userRepo domain.UserRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication failed: No token provided"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication failed: Invalid authorization header"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication failed: Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication failed: Invalid token"})
			}
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if err == domain.ErrUserNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Authentication failed: User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Authentication failed"})
			}
			c.Abort()
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication failed: Your account has been deactivated. Please contact support."})
			c.Abort()
			return
		}

		if user.Role != claims.Role {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Authentication failed: Role mismatch. Please login again."})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_role", user.Role)

		c.Next()
	})
}

// CurrentUser returns the account attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
