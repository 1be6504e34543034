package setup

import (
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/router"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTP struct {
	Engine  *gin.Engine
	Auth    *middleware.Authenticator
	Limiter *middleware.UserRateLimiter
}

func InitializeHTTP(deps *Dependencies, ucs *UseCases) *HTTP {
	cfg := deps.Config
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	limiter := middleware.NewUserRateLimiter(cfg.Business.RateLimitRPS, cfg.Business.RateLimitBurst)

	engine := router.New(router.Handlers{
		Tasks:     handlers.NewTaskHandler(ucs.Tasks),
		Packages:  handlers.NewPackageHandler(ucs.Packages),
		Wallet:    handlers.NewWalletHandler(ucs.Wallet),
		Referrals: handlers.NewReferralHandler(ucs.Referrals),
		Payments:  handlers.NewPaymentHandler(ucs.Payments),
		Users:     handlers.NewUserHandler(ucs.Users, ucs.Quota, auth),
	}, router.Options{
		Auth:           auth,
		Limiter:        limiter,
		Metrics:        deps.Metrics,
		Logger:         deps.Logger,
		MetricsHandler: promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}),
		Ready:          deps.Ready,
	})

	return &HTTP{Engine: engine, Auth: auth, Limiter: limiter}
}
