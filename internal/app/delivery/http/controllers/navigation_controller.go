package controllers

import (
	"net/http"

	"medicapp-gateway/internal/app/delivery/http/middlewares"
	"medicapp-gateway/internal/app/services/navigation"
	"medicapp-gateway/internal/pkg/constvars"
	"medicapp-gateway/internal/pkg/dto/responses"
	"medicapp-gateway/internal/pkg/utils"

	"go.uber.org/zap"
)

type NavigationController struct {
	Log *zap.Logger
}

func NewNavigationController(log *zap.Logger) *NavigationController {
	return &NavigationController{Log: log}
}

// Menu renders the registry for the session role. The active entry is
// computed from the client's current path passed as ?path=.
func (ctrl *NavigationController) Menu(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	currentPath := r.URL.Query().Get(constvars.QueryParamPath)

	menu := &responses.Menu{
		Role:    session.Role().String(),
		Entries: navigation.BuildMenu(session.Role(), currentPath),
	}
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.MenuSuccess, menu)
}
