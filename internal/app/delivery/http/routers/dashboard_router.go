package routers

import (
	"medicapp-gateway/internal/app/delivery/http/controllers"
	"medicapp-gateway/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Dashboard navigations resolve the session but are never rejected
// outright: the authorizer answers with a render or a redirect.
func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Get("/", dashboardController.Landing)
	router.With(middlewares.WithSession).Get("/dashboard", dashboardController.Resolve)
	router.With(middlewares.WithSession).Get("/dashboard/*", dashboardController.Resolve)
}
