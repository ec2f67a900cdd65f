package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/bengkelku/workshop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles HTTP requests related to service sessions.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// registerSessionRoutes registers service session routes on the protected
// group. Session listing hangs off the customer it belongs to.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	rg.POST("/service-sessions", h.createSession)
	rg.GET("/customers/:customer_id/service-sessions", h.listSessionsByCustomer)
}

func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newSession, err := h.sessionService.CreateSession(c.Request.Context(), user.WorkshopID, req)
	if err != nil {
		respondWithError(c, err, "create service session")
		return
	}

	logger.Info("Service session created", slog.String("session_id", newSession.SessionID))
	c.JSON(http.StatusCreated, dto.ToSessionResponse(newSession))
}

func (h *sessionHandler) listSessionsByCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sessions, err := h.sessionService.ListSessionsByCustomer(c.Request.Context(), customerID, user.WorkshopID)
	if err != nil {
		respondWithError(c, err, "list service sessions")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponses(sessions))
}
