package handlers

import (
	"net/http"

	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/bengkelku/workshop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the read-only ledger views: per-customer summaries,
// the workshop dashboard and the WhatsApp statement.
type reportingHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	statementService portssvc.StatementSvcFacade
}

func newReportingHandler(ls portssvc.LedgerSvcFacade, ss portssvc.StatementSvcFacade) *reportingHandler {
	return &reportingHandler{
		ledgerService:    ls,
		statementService: ss,
	}
}

// registerReportingRoutes registers the reporting routes on the protected group.
func registerReportingRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, statementService portssvc.StatementSvcFacade) {
	h := newReportingHandler(ledgerService, statementService)

	rg.GET("/customers/:customer_id/summary", h.getCustomerSummary)
	rg.GET("/customers/:customer_id/whatsapp-message", h.getWhatsAppMessage)
	rg.GET("/dashboard", h.getDashboard)
}

func (h *reportingHandler) getCustomerSummary(c *gin.Context) {
	customerID := c.Param("customer_id")

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.ledgerService.GetCustomerSummary(c.Request.Context(), customerID, user.WorkshopID)
	if err != nil {
		respondWithError(c, err, "get customer summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerSummaryResponse(summary))
}

func (h *reportingHandler) getWhatsAppMessage(c *gin.Context) {
	customerID := c.Param("customer_id")
	sessionID := c.Query("session_id")

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.ledgerService.GetCustomerSummary(c.Request.Context(), customerID, user.WorkshopID)
	if err != nil {
		respondWithError(c, err, "build whatsapp message")
		return
	}

	// Accounts registered without an explicit workshop name still get a
	// presentable statement header.
	workshopName := user.WorkshopName
	if workshopName == "" {
		workshopName = "Bengkel " + user.Username
	}

	statement, err := h.statementService.BuildStatement(summary, workshopName, sessionID)
	if err != nil {
		respondWithError(c, err, "build whatsapp message")
		return
	}

	c.JSON(http.StatusOK, dto.ToWhatsAppMessageResponse(statement))
}

func (h *reportingHandler) getDashboard(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, err := h.ledgerService.GetDashboard(c.Request.Context(), user.WorkshopID)
	if err != nil {
		respondWithError(c, err, "get dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(rows))
}
