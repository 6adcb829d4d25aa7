package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/apponislam/vinies709-backend/internal/http/handlers"
	"github.com/apponislam/vinies709-backend/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ach *handlers.AccountHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.GET("/verify-email", ah.VerifyEmail)
	auth.POST("/refresh-token", ah.RefreshToken)
	auth.POST("/request-password-reset", ach.RequestPasswordReset)
	auth.POST("/verify-otp", ach.VerifyOTP)
	auth.POST("/resend-otp", ach.ResendOTP)
	auth.POST("/reset-password", ach.ResetPassword)
	auth.GET("/verify-new-email", ach.VerifyNewEmail)

	protected := r.Group("/auth").Use(jwtmw.WithJWT())
	protected.GET("/me", ah.Me)
	protected.POST("/logout", ah.Logout)
	protected.POST("/resend-verification", ah.ResendVerification)
	protected.PATCH("/update-profile", ach.UpdateProfile)
	protected.POST("/change-password", ach.ChangePassword)
	protected.POST("/update-email", ach.UpdateEmail)
	protected.POST("/resend-email-update", ach.ResendEmailUpdate)

	adm := r.Group("/auth/users").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.POST("/:userId/set-password", ach.SetPassword)

	return r
}
