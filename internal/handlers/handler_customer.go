package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/bengkelku/workshop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// registerCustomerRoutes registers customer CRUD routes on the protected group.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.DELETE("/:customer_id", h.deleteCustomer)
	}
}

func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newCustomer, err := h.customerService.CreateCustomer(c.Request.Context(), user.WorkshopID, req)
	if err != nil {
		respondWithError(c, err, "create customer")
		return
	}

	logger.Info("Customer created", slog.String("customer_id", newCustomer.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(newCustomer))
}

func (h *customerHandler) listCustomers(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), user.WorkshopID)
	if err != nil {
		respondWithError(c, err, "list customers")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customer_id")

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), customerID, user.WorkshopID); err != nil {
		respondWithError(c, err, "delete customer")
		return
	}

	logger.Info("Customer deleted", slog.String("customer_id", customerID))
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
