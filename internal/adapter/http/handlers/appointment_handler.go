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

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapAppointmentError(usecase.ErrInvalidAppointmentData)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	appointment, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapAppointmentError(usecase.ErrInvalidAppointmentData)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	appointment, err := h.usecase.Update(c.Request.Context(), c.Param("appointment_id"), payload.ToDraft())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("appointment_id")); err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Appointment deleted successfully"})
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, usecase.ErrInvalidAppointmentData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
