package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/service"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/jwt"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	jwtMgr  *jwt.Manager
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// SetJWTManager 注入 JWT 管理器（Logout 时解析 Token）
func (h *AuthHandler) SetJWTManager(jwtMgr *jwt.Manager) {
	h.jwtMgr = jwtMgr
}

// Register 住户注册
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "Thiếu thông tin bắt buộc")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, user)
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "Thiếu thông tin bắt buộc")
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, tokens)
}

// RefreshToken 刷新 Token
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "Thiếu thông tin bắt buộc")
		return
	}

	tokens, err := h.authSvc.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, tokens)
}

// Logout 退出登录
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.jwtMgr == nil {
		response.OK(c, nil)
		return
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.OK(c, nil)
		return
	}

	claims, err := h.jwtMgr.ParseToken(parts[1])
	if err != nil {
		// Token 已失效，无需拉黑
		response.OK(c, nil)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// GetMe 获取当前用户信息
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, user)
}

// ChangePassword 修改密码
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "Thiếu thông tin bắt buộc")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAuthError 统一处理认证模块业务错误
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, 11101, service.ErrEmailTaken.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11102, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrUserDisabled):
		response.Forbidden(c, 11103, service.ErrUserDisabled.Error())
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenInvalid):
		response.Unauthorized(c, 11104, "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11105, service.ErrUserNotFound.Error())
	case errors.Is(err, service.ErrWrongPassword):
		response.BadRequest(c, 11106, service.ErrWrongPassword.Error())
	default:
		response.InternalError(c)
	}
}
