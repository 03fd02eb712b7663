package me

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	service "adikart/internal/core/services/get_user_by_session_token"
	handlerauth "adikart/internal/http/handlers/auth"
	"adikart/internal/http/handlers/response"
	"errors"
	"net/http"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := handlerauth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	result, err := h.service.Run(
		r.Context(),
		service.Input{Token: token},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	authenticatedUser := response.User{}
	authenticatedUser.FromDomainUser(result.User)
	response.Render(rw, Result{User: authenticatedUser}, http.StatusOK)
}
