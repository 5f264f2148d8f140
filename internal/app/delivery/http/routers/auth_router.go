package routers

import (
	"medicapp-gateway/internal/app/delivery/http/controllers"
	"medicapp-gateway/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.LoginRateLimit).Post("/login", authController.Login)
	router.With(middlewares.LoginRateLimit).Post("/google", authController.GoogleLogin)
	router.With(middlewares.LoginRateLimit).Post("/register", authController.Register)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
