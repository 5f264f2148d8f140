package controllers

import (
	"net/http"

	"medicapp-gateway/internal/app/contracts"
	"medicapp-gateway/internal/pkg/constvars"
	"medicapp-gateway/internal/pkg/exceptions"
	"medicapp-gateway/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionController is the ops surface: support staff can force a
// logout by session ID, e.g. after a reported account compromise.
type SessionController struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
}

func NewSessionController(log *zap.Logger, sessionService contracts.SessionService) *SessionController {
	return &SessionController{
		Log:            log,
		SessionService: sessionService,
	}
}

func (ctrl *SessionController) ForceLogout(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	if err := ctrl.SessionService.Clear(r.Context(), sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Session force-cleared via ops API", zap.String("session_id", sessionID))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SessionCleared, nil)
}
