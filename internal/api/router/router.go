package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/config"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/api/handler"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/api/middleware"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/jwt"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/register", middleware.RateLimit(rdb, 5, time.Minute), h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetMe)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 公共设施模块（写操作仅限管理员）
			adminOnly := middleware.RoleAuth("admin")
			facilities := authorized.Group("/facilities")
			{
				facilities.GET("", h.Facility.List)
				facilities.GET("/:id", h.Facility.Get)
				facilities.POST("", adminOnly, h.Facility.Create)
				facilities.PUT("/:id", adminOnly, h.Facility.Update)
				facilities.DELETE("/:id", adminOnly, h.Facility.Delete)
			}

			// 设施预订模块
			bookings := authorized.Group("/bookings")
			{
				bookings.POST("", h.Booking.Create)
				bookings.GET("/my", h.Booking.ListMine)
				bookings.GET("/:id", h.Booking.Get)
			}

			// 住户申报模块
			requests := authorized.Group("/requests")
			{
				requests.POST("", h.Request.Create)
				requests.GET("/my", h.Request.ListMine)
				requests.GET("/:id", h.Request.Get)
				requests.PUT("/:id", h.Request.Update)
			}

			// 管理员审批台
			admin := authorized.Group("/admin")
			admin.Use(adminOnly)
			{
				admin.GET("/bookings", h.Approval.ListBookings)
				admin.PUT("/bookings/:id/status", h.Booking.UpdateStatus)

				admin.GET("/requests", h.Approval.ListRequests)
				admin.PUT("/requests/:id/status", h.Request.UpdateStatus)
			}
		}
	}

	return r
}
