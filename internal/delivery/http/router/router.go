package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Tasks     *handlers.TaskHandler
	Packages  *handlers.PackageHandler
	Wallet    *handlers.WalletHandler
	Referrals *handlers.ReferralHandler
	Payments  *handlers.PaymentHandler
	Users     *handlers.UserHandler
}

type Options struct {
	Auth    *middleware.Authenticator
	Limiter *middleware.UserRateLimiter
	Metrics *metrics.GigMetrics
	Logger  *slog.Logger
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	// Ready backs /healthz; nil means always ready.
	Ready func(ctx context.Context) error
}

func New(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestMetrics(opts.Metrics))
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.GET("/healthz", healthz(opts.Ready))
	if opts.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	api := r.Group("/api/v1")
	api.GET("/packages", h.Packages.ListActive)
	api.POST("/auth/register", h.Users.Register)

	authed := api.Group("", opts.Auth.Middleware())
	authed.GET("/me", h.Users.Me)

	vendor := authed.Group("", middleware.RequireRole(domain.RoleVendor))
	if opts.Limiter != nil {
		vendor.Use(opts.Limiter.Middleware())
	}
	vendor.GET("/tasks", h.Tasks.ListAvailable)
	vendor.GET("/tasks/mine", h.Tasks.ListMine)
	vendor.GET("/tasks/:id", h.Tasks.Get)
	vendor.POST("/tasks/:id/start", h.Tasks.Start)
	vendor.POST("/tasks/:id/skip", h.Tasks.Skip)
	vendor.POST("/tasks/:id/submit", h.Tasks.Submit)
	vendor.GET("/me/quota", h.Users.Quota)
	vendor.GET("/me/packages", h.Users.Grants)
	vendor.GET("/wallet", h.Wallet.GetWallet)
	vendor.POST("/wallet/withdrawals", h.Wallet.RequestWithdrawal)
	vendor.GET("/referrals", h.Referrals.List)
	vendor.GET("/referrals/stats", h.Referrals.Stats)
	vendor.POST("/payments/orders", h.Payments.CreateOrder)
	vendor.POST("/payments/confirm", h.Payments.Confirm)

	admin := authed.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/tasks", h.Tasks.List)
	admin.POST("/tasks", h.Tasks.Create)
	admin.POST("/tasks/bulk", h.Tasks.Bulk)
	admin.POST("/tasks/sweep", h.Tasks.Sweep)
	admin.DELETE("/tasks/:id", h.Tasks.Delete)
	admin.POST("/tasks/:id/review", h.Tasks.Review)
	admin.POST("/tasks/:id/assign", h.Tasks.Assign)
	admin.PUT("/tasks/:id/status", h.Tasks.SetStatus)
	admin.GET("/packages", h.Packages.ListAll)
	admin.POST("/packages", h.Packages.Create)
	admin.PUT("/packages/:id", h.Packages.Update)
	admin.DELETE("/packages/:id", h.Packages.Delete)
	admin.GET("/referrals/top", h.Referrals.Top)
	admin.POST("/withdrawals/:id/approve", h.Wallet.ApproveWithdrawal)
	admin.POST("/withdrawals/:id/reject", h.Wallet.RejectWithdrawal)
	admin.GET("/users/:id/wallet/verify", h.Wallet.VerifyBalance)

	return r
}

func healthz(ready func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Code: "unavailable", Error: err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
