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

type DashboardController struct {
	Log *zap.Logger
}

func NewDashboardController(log *zap.Logger) *DashboardController {
	return &DashboardController{Log: log}
}

// Resolve gates every dashboard navigation. Even destinations picked
// from a freshly rendered menu re-enter the authorizer here: a menu
// drawn before a logout/login in another tab must not grant its old
// role's paths.
func (ctrl *DashboardController) Resolve(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	outcome := navigation.Authorize(session.Role(), r.URL.Path)

	switch outcome.Action {
	case navigation.RedirectToLanding, navigation.RedirectToRoleHome:
		http.Redirect(w, r, outcome.Target, http.StatusFound)
	default:
		resolution := &responses.Resolution{
			Role: session.Role().String(),
			Path: outcome.Target,
		}
		utils.BuildSuccessResponse(w, http.StatusOK, constvars.DestinationResolved, resolution)
	}
}

// Landing is the public page anonymous dashboard attempts land on.
func (ctrl *DashboardController) Landing(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, http.StatusOK, "MedicApp", nil)
}
