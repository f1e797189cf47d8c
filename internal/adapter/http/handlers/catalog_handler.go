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

// CatalogHandler serves the two priced catalogs quote line items come from.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapCatalogError(usecase.ErrInvalidServiceData)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	service, err := h.usecase.CreateService(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapCatalogError(usecase.ErrInvalidServiceData)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	service, err := h.usecase.UpdateService(c.Request.Context(), c.Param("service_id"), payload.ToDraft())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("service_id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Service deleted successfully"})
}

func (h *CatalogHandler) ListParts(c *gin.Context) {
	parts, err := h.usecase.ListParts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *CatalogHandler) CreatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapCatalogError(usecase.ErrInvalidPartData)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	part, err := h.usecase.CreatePart(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *CatalogHandler) UpdatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapCatalogError(usecase.ErrInvalidPartData)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	part, err := h.usecase.UpdatePart(c.Request.Context(), c.Param("part_id"), payload.ToDraft())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *CatalogHandler) DeletePart(c *gin.Context) {
	if err := h.usecase.DeletePart(c.Request.Context(), c.Param("part_id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Part deleted successfully"})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceData),
		errors.Is(err, usecase.ErrInvalidPartID), errors.Is(err, usecase.ErrInvalidPartData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
