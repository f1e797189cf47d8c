package handlers

import (
	"errors"
	"net/http"

	request "oficina_ibs/internal/adapter/http/dto/request"
	response "oficina_ibs/internal/adapter/http/dto/response"
	"oficina_ibs/internal/usecase"
	"oficina_ibs/pkg"

	"github.com/gin-gonic/gin"
)

// Login failures always produce the same body, never revealing whether the
// username exists.
var errBadCredentials = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, username, err := h.usecase.Login(c.Request.Context(), payload.ResolveUsername(), payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(errBadCredentials.HTTPStatus, errBadCredentials.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token, Username: username})
}
