package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/isebirbax/portfolio/handlers"
	"github.com/isebirbax/portfolio/internal/config"
	"github.com/isebirbax/portfolio/internal/kv"
	"github.com/isebirbax/portfolio/internal/store"
	"github.com/isebirbax/portfolio/internal/store/handler"
	"github.com/isebirbax/portfolio/pkg/logger"
	"github.com/isebirbax/portfolio/pkg/metrics"
	"github.com/isebirbax/portfolio/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL is honoured before config so config errors are visible
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.InitWithOptions(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	logger.Infof("config loaded: backend=%s env=%s log=%s", cfg.Store.Backend, cfg.Server.Environment, logger.LevelString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := kv.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warnf("closing store backend: %v", err)
		}
	}()

	st, report := store.Open(ctx, backend)
	for _, o := range report {
		if o.Err != nil {
			logger.Warnf("migration %s: %s (%v)", o.Collection, o.Action, o.Err)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Permissive CORS for the static site and admin console.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	var limiterRedis *redis.Client
	var contact gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			limiterRedis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
			defer func() { _ = limiterRedis.Close() }()
			if err := limiterRedis.Ping(ctx).Err(); err != nil {
				logger.Warnf("rate limiter redis %s unreachable, requests fail open until it returns: %v", cfg.Redis.Addr(), err)
			}
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			contact = middleware.RedisRateLimitMiddleware(limiterRedis, "contact", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
			logger.Infof("contact form limited via redis: %.2f rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		} else {
			contact = middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
			logger.Infof("contact form limited in memory: %.2f rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{}
		ready := true

		pctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := kv.Ping(pctx, backend); err != nil {
			logger.Warnf("readiness: %s store: %v", cfg.Store.Backend, err)
			deps["store"] = false
			ready = false
		} else {
			deps["store"] = true
		}
		if limiterRedis != nil {
			// the limiter fails open, so redis is reported but not required
			deps["redis"] = limiterRedis.Ping(pctx).Err() == nil
		}

		uptime := time.Since(startTime).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})

	handlers.RegisterSwagger(r)
	handler.RegisterRoutes(r, st, handler.Options{
		Secret:         []byte(cfg.JWT.Secret),
		TokenTTL:       cfg.JWT.AccessTokenTTL,
		ContactLimiter: contact,
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
