package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"refuge_backend/internal/auth/service"
	"refuge_backend/internal/auth/transport"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sign-in", h.SignIn)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req transport.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	token, ttl, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpkit.Error(c, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int64(ttl.Seconds()),
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	account, err := h.svc.Me(c.Request.Context(), id.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ProfileResponse{
		ID:          account.ID.String(),
		Email:       account.Email,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		DisplayName: account.DisplayName,
		Groups:      account.Groups,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), id.UserID(), req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
