package controllers

import (
	"context"
	"net/http"
	"time"

	"medicapp-gateway/internal/app/contracts"
	"medicapp-gateway/internal/pkg/constvars"
	"medicapp-gateway/internal/pkg/dto/requests"
	"medicapp-gateway/internal/pkg/exceptions"
	"medicapp-gateway/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const authRequestTimeout = 10 * time.Second

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(log *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         log,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.RemoteAddr = r.RemoteAddr

	ctx, cancel := context.WithTimeout(r.Context(), authRequestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	setSessionCookie(w, response.Token)
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GoogleLogin)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.RemoteAddr = r.RemoteAddr

	ctx, cancel := context.WithTimeout(r.Context(), authRequestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.GoogleLogin(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	setSessionCookie(w, response.Token)
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Register)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.RemoteAddr = r.RemoteAddr

	ctx, cancel := context.WithTimeout(r.Context(), authRequestTimeout)
	defer cancel()

	if err := ctrl.AuthUsecase.Register(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusCreated, constvars.RegisterSuccess, nil)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.ContextSessionID).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clearSessionCookie(w)
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.LogoutSuccess, nil)
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
