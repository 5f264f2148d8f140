package routers

import (
	"net/http"
	"time"

	"medicapp-gateway/internal/app/config"
	"medicapp-gateway/internal/app/delivery/http/controllers"
	"medicapp-gateway/internal/app/delivery/http/middlewares"
	"medicapp-gateway/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	requestLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	navigationController *controllers.NavigationController,
	dashboardController *controllers.DashboardController,
	sessionController *controllers.SessionController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderAPIKey},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequestsPerSecond, time.Second))
	router.Use(middlewares.RequestLogger(requestLog))
	router.Use(middlewares.ErrorHandler)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})
		r.Route("/navigation", func(r chi.Router) {
			attachNavigationRoutes(r, middlewares, navigationController)
		})
		r.Route("/sessions", func(r chi.Router) {
			attachSessionRoutes(r, middlewares, sessionController)
		})
	})

	attachDashboardRoutes(router, middlewares, dashboardController)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "page not found",
		})
	})
}
