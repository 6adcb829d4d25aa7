package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apponislam/vinies709-backend/domain"
	"github.com/apponislam/vinies709-backend/internal/http/middleware"
)

// AccountHandlers handles password reset, profile and email-change
// HTTP requests
type AccountHandlers struct {
	accountSvc domain.AccountService
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc}
}

// EmailRequest carries the email-only request bodies
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest represents OTP verification request
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest represents the final password reset request
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdateProfileRequest represents partial profile update
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
}

// ChangePasswordRequest represents authenticated password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UpdateEmailRequest represents an email-change request
type UpdateEmailRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PasswordRequest carries password-only request bodies
type PasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// SetPasswordRequest represents the privileged password set
type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// RequestPasswordReset generates and mails a reset OTP
func (h *AccountHandlers) RequestPasswordReset(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.accountSvc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset OTP sent to email", "data": nil})
}

// VerifyOTP exchanges a valid OTP for an opaque reset token
func (h *AccountHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, err := h.accountSvc.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case domain.ErrNoOTPRequest:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No OTP request found"})
		case domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP expired"})
		case domain.ErrOTPInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "OTP verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified successfully", "data": gin.H{"token": token}})
}

// ResendOTP rotates and re-mails the reset OTP
func (h *AccountHandlers) ResendOTP(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.accountSvc.ResendOTP(c.Request.Context(), req.Email); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to resend OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP resent successfully", "data": nil})
}

// ResetPassword consumes the opaque reset token
func (h *AccountHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.accountSvc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if err == domain.ErrResetTokenInvalid {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Password reset failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful", "data": nil})
}

// UpdateProfile partially updates name, phone and location
func (h *AccountHandlers) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.accountSvc.UpdateProfile(c.Request.Context(), user.ID, domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Location:  req.Location,
	})
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Profile update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "data": userPayload(updated)})
}

// ChangePassword verifies the current password before storing the new
// one
func (h *AccountHandlers) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.accountSvc.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case domain.ErrPasswordIncorrect:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Current password is incorrect"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Password change failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully", "data": nil})
}

// UpdateEmail stages a new address pending verification
func (h *AccountHandlers) UpdateEmail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.accountSvc.UpdateEmail(c.Request.Context(), user.ID, req.Email, req.Password); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case domain.ErrPasswordIncorrect:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password is incorrect"})
		case domain.ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Email update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email update requested. Please verify new email.", "data": nil})
}

// ResendEmailUpdate rotates and re-mails the email-change token to the
// pending address
func (h *AccountHandlers) ResendEmailUpdate(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.accountSvc.ResendEmailUpdate(c.Request.Context(), user.ID, req.Password); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case domain.ErrNoPendingEmail:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No pending email change"})
		case domain.ErrPasswordIncorrect:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password is incorrect"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to resend verification email"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email verification resent successfully", "data": nil})
}

// VerifyNewEmail promotes the staged address
func (h *AccountHandlers) VerifyNewEmail(c *gin.Context) {
	token := c.Query("token")
	email := c.Query("email")

	if err := h.accountSvc.VerifyNewEmail(c.Request.Context(), email, token); err != nil {
		if err == domain.ErrVerificationInvalid {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired verification link"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Email verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "New email verified successfully", "data": nil})
}

// SetPassword is the privileged password set; the MANAGER gate sits in
// the authorization middleware
func (h *AccountHandlers) SetPassword(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user ID"})
		return
	}

	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.accountSvc.SetPassword(c.Request.Context(), uint(userID), req.Password); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to set password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password set successfully", "data": nil})
}
