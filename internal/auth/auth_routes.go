package auth

import (
	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		// Tight per-IP limits on the unauthenticated endpoints: register and
		// login are the brute-force surface.
		auth.POST("/register",
			middleware.RateLimitByIP(0.05, 1),
			handler.Register,
		)

		auth.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.Login,
		)

		auth.POST("/refresh",
			middleware.RateLimitByIP(0.5, 2),
			handler.RefreshToken,
		)

		auth.POST("/forgot-password",
			middleware.RateLimitByIP(0.05, 1),
			handler.RequestPasswordReset,
		)

		auth.POST("/reset-password",
			middleware.RateLimitByIP(0.1, 2),
			handler.ResetPassword,
		)

		authenticated := auth.Group("/")
		authenticated.Use(middleware.AuthMiddleware(jwtSecret))
		{
			authenticated.GET("/me",
				middleware.RateLimitByUser(5, 10),
				handler.Me,
			)

			authenticated.POST("/logout",
				middleware.RateLimitByUser(1, 2),
				handler.Logout,
			)
		}
	}
}
