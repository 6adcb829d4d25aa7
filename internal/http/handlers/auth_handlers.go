package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apponislam/vinies709-backend/domain"
	"github.com/apponislam/vinies709-backend/internal/http/middleware"
)

const refreshCookieName = "refreshToken"

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	accountSvc domain.AccountService
	env        string
	refreshTTL time.Duration
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(accountSvc domain.AccountService, env string, refreshTTL time.Duration) *AuthHandlers {
	return &AuthHandlers{
		accountSvc: accountSvc,
		env:        env,
		refreshTTL: refreshTTL,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents token refresh request (body fallback when
// the cookie is absent)
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// userPayload is the outward representation of an account. The
// password hash and every ephemeral secret field stay out of it.
func userPayload(u *domain.User) gin.H {
	return gin.H{
		"id":              u.ID,
		"firstName":       u.FirstName,
		"lastName":        u.LastName,
		"email":           u.Email,
		"role":            u.Role,
		"phone":           u.Phone,
		"location":        u.Location,
		"isActive":        u.IsActive,
		"isEmailVerified": u.IsEmailVerified,
		"lastLogin":       u.LastLogin,
		"createdAt":       u.CreatedAt,
		"updatedAt":       u.UpdatedAt,
	}
}

// setRefreshCookie writes the refresh token cookie: HttpOnly, secure
// in production, SameSite strict, 30-day lifetime. Clients depend on
// this exact shape.
func (h *AuthHandlers) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, token, int(h.refreshTTL.Seconds()), "/", "", h.env == "production", true)
}

func (h *AuthHandlers) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, "", -1, "/", "", h.env == "production", true)
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := h.accountSvc.Register(c.Request.Context(), domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Phone:     req.Phone,
		Location:  req.Location,
	})
	if err != nil {
		switch err {
		case domain.ErrEmailTaken:
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already in use"})
		case domain.ErrInvalidRole:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid role"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to register user"})
		}
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data": gin.H{
			"user":        userPayload(result.User),
			"accessToken": result.AccessToken,
		},
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		case domain.ErrAccountInactive:
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Account is deactivated"})
		case domain.ErrEmailNotVerified:
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Email is not verified"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		}
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"user":        userPayload(result.User),
			"accessToken": result.AccessToken,
		},
	})
}

// VerifyEmail handles the verification link from registration mail
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	email := c.Query("email")

	if err := h.accountSvc.VerifyEmail(c.Request.Context(), email, token); err != nil {
		if err == domain.ErrVerificationInvalid {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired verification link"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Email verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email verified successfully", "data": nil})
}

// ResendVerification handles re-sending the verification mail for the
// authenticated account
func (h *AuthHandlers) ResendVerification(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	if err := h.accountSvc.ResendVerification(c.Request.Context(), user.Email); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case domain.ErrAlreadyVerified:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already verified"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to resend verification email"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification email resent successfully", "data": nil})
}

// Me returns the authenticated account's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User retrieved successfully", "data": userPayload(user)})
}

// Logout clears the refresh cookie. There is no server-side session to
// revoke.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful", "data": nil})
}

// RefreshToken mints a new access token from the refresh cookie (or
// body fallback). The refresh token itself is not rotated.
func (h *AuthHandlers) RefreshToken(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshCookieName)
	if refreshToken == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	accessToken, err := h.accountSvc.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		switch err {
		case domain.ErrRefreshRequired:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Refresh token required"})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid refresh token"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token refreshed successfully",
		"data":    gin.H{"accessToken": accessToken},
	})
}
