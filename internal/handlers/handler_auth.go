package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/bengkelku/workshop_management_app/internal/middleware"
	"github.com/bengkelku/workshop_management_app/internal/platform/config"
	"github.com/bengkelku/workshop_management_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles registration, login and identity lookups.
type authHandler struct {
	userService portssvc.UserSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService: us,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes. Both endpoints
// are rate limited by client IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
	}
}

// registerMeRoute exposes the authenticated identity lookup inside the
// protected group.
func registerMeRoute(rg *gin.RouterGroup) {
	rg.GET("/auth/me", getMe)
}

func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "register user")
		return
	}

	token, err := h.issueToken(c, newUser.Username)
	if err != nil {
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(token, newUser))
}

func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(c, err, "authenticate user")
		return
	}

	token, err := h.issueToken(c, user.Username)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(token, user))
}

// issueToken signs a token for the given username. On failure it writes the
// 500 response itself and returns the error so callers just bail out.
func (h *authHandler) issueToken(c *gin.Context, username string) (string, error) {
	token, err := utils.GenerateJWT(username, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return "", err
	}
	return token, nil
}

// getMe returns the account resolved by the auth middleware.
func getMe(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
