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

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// ListVehicles returns every vehicle, optionally narrowed to a single client
// with the client_id query parameter.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var (
		vehicles interface{}
		err      error
	)
	if clientID := c.Query("client_id"); clientID != "" {
		vehicles, err = h.usecase.ListByClientID(c.Request.Context(), clientID)
	} else {
		vehicles, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) ListVehiclesByClient(c *gin.Context) {
	vehicles, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapVehicleError(usecase.ErrInvalidVehicleData)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapVehicleError(usecase.ErrInvalidVehicleData)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Update(c.Request.Context(), c.Param("vehicle_id"), payload.ToDraft())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("vehicle_id")); err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Vehicle deleted successfully"})
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidVehicleData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
