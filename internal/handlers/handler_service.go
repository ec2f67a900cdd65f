package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/bengkelku/workshop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// serviceHandler handles HTTP requests for billable line items.
type serviceHandler struct {
	serviceEntryService portssvc.ServiceEntrySvcFacade
}

func newServiceHandler(ses portssvc.ServiceEntrySvcFacade) *serviceHandler {
	return &serviceHandler{serviceEntryService: ses}
}

// registerServiceRoutes registers line item routes on the protected group.
func registerServiceRoutes(rg *gin.RouterGroup, serviceEntryService portssvc.ServiceEntrySvcFacade) {
	h := newServiceHandler(serviceEntryService)

	services := rg.Group("/services")
	{
		services.POST("", h.createService)
		services.PUT("/:service_id", h.updateService)
		services.DELETE("/:service_id", h.deleteService)
	}
}

func (h *serviceHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newService, err := h.serviceEntryService.CreateService(c.Request.Context(), user.WorkshopID, req)
	if err != nil {
		respondWithError(c, err, "create service")
		return
	}

	logger.Info("Service created", slog.String("service_id", newService.ServiceID))
	c.JSON(http.StatusCreated, dto.ToServiceResponse(newService))
}

func (h *serviceHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("service_id")

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.serviceEntryService.UpdateService(c.Request.Context(), serviceID, user.WorkshopID, req)
	if err != nil {
		respondWithError(c, err, "update service")
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(updated))
}

func (h *serviceHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("service_id")

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.serviceEntryService.DeleteService(c.Request.Context(), serviceID, user.WorkshopID); err != nil {
		respondWithError(c, err, "delete service")
		return
	}

	logger.Info("Service deleted", slog.String("service_id", serviceID))
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
