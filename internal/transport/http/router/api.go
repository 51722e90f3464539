package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"donation-api/internal/core/auth"
	"donation-api/internal/transport/http/handler"
	mdw "donation-api/internal/transport/http/middleware"
)

// NewAPIEngine assembles the full HTTP surface: the public submission and
// login endpoints plus the token-gated admin endpoints.
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, donationH *handler.DonationHandler, authH *handler.AuthHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 公共端
	api.POST("/donations", donationH.Create)
	api.POST("/auth/login", authH.Login)
	// change-password 按文档不带 token（见 DESIGN.md）
	api.POST("/auth/change-password", authH.ChangePassword)

	// 管理端（统一 Bearer 校验）
	admin := api.Group("/donations")
	admin.Use(mdw.AuthJWT(jwter))
	admin.GET("", donationH.List)
	admin.PUT("/:id/status", donationH.UpdateStatus)
	admin.GET("/stats", donationH.Stats)
	admin.GET("/export", donationH.Export)

	return r
}
