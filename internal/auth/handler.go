package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shortsreel/backend/pkg/response"
)

// LoginRequest is the body for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued bearer token and its lifetime in
// seconds.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Handler handles the admin login endpoint.
type Handler struct {
	creds  *Credentials
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(creds *Credentials, jwt *JWTService, logger *zap.Logger) *Handler {
	return &Handler{creds: creds, jwt: jwt, logger: logger}
}

// Login handles POST /api/admin/login. Missing fields are a 400; bad
// credentials are a 401 with a deliberately uniform message.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password required")
		return
	}

	if !h.creds.Verify(req.Username, req.Password) {
		h.logger.Warn("failed admin login", zap.String("client_ip", c.ClientIP()))
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.jwt.Issue(h.creds.Username())
	if err != nil {
		h.logger.Error("issue token", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	response.OK(c, TokenResponse{Token: token, ExpiresIn: int64(h.jwt.TTL().Seconds())})
}
