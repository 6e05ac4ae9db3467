package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
	"github.com/huamengwoke/finance_assistant_app/internal/utils"
	"github.com/huamengwoke/finance_assistant_app/pkg/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: us,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	// Rate limit: 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/auto-login", h.AutoLogin)
		auth.GET("/verify", h.Verify)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account and returns a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response "Conflict (username exists)"
// @Failure 500 {object} dto.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("username and password are required"))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	token, err := utils.GenerateJWT(user, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("registration successful", dto.AuthData{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Token:    token,
	}))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("username and password are required"))
		return
	}
	h.issueToken(c, req.Username, req.Password, "login successful")
}

// AutoLogin godoc
// @Summary Development auto login
// @Description Logs in with the built-in admin account.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /auth/auto-login [post]
func (h *AuthHandler) AutoLogin(c *gin.Context) {
	h.issueToken(c, "admin", "123456", "auto login successful")
}

func (h *AuthHandler) issueToken(c *gin.Context, username, password, message string) {
	user, err := h.userService.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		respondError(c, err, "Failed to authenticate")
		return
	}

	token, err := utils.GenerateJWT(user, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage(message, dto.AuthData{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Token:    token,
	}))
}

// Verify godoc
// @Summary Verify token
// @Description Validates a bearer token and returns the identity it carries.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, dto.Fail("Authorization header format must be Bearer {token}"))
		return
	}

	claims, err := utils.ParseAndValidateJWT(parts[1], h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Fail("Invalid token"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.IdentityData{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}))
}

// Logout godoc
// @Summary User logout
// @Description Stateless logout; clients discard their token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OKMessage("logout successful", nil))
}
