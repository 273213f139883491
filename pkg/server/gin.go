package server

import (
	"Inkwell/config"
	"Inkwell/middleware"
	ictx "Inkwell/pkg/context"
	"Inkwell/pkg/log"
	"Inkwell/pkg/response"
	"Inkwell/pkg/utils"
	"Inkwell/pkg/validate"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
}

func NewGinEngine(conf *config.Config, h *Handlers) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	validate.Setup()

	r := gin.New()
	r.Use(CORSMiddleware(conf.Cors))
	r.Use(middleware.RequestID(), middleware.GinZap(), recovery())
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	h.Auth.RegisterRouter(api)
	h.Book.RegisterRouter(api)
	h.Chapter.RegisterRouter(api)
	h.Card.RegisterRouter(api)
	h.Review.RegisterRouter(api)

	r.NoRoute(ictx.Wrap(func(c *gin.Context) error {
		return response.NewError(http.StatusNotFound, "route not found")
	}))
	return r
}

func CORSMiddleware(conf *config.Cors) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Content-Length", "X-Requested-With", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	origins := []string{"*"}
	if conf != nil && len(conf.AllowOrigins) > 0 {
		origins = conf.AllowOrigins
	}
	if len(origins) == 1 && origins[0] == "*" {
		// 通配来源不能与 credentials 同时使用, 回显请求来源
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.L.Error("panic recovered", zap.String("path", c.Request.URL.Path), zap.String("trace", utils.PanicTrace(err)))
		response.Abort(c, http.StatusInternalServerError, "internal server error")
	})
}

func Run(ctx *cli.Context, app *AppProvider) error {
	eg, groupCtx := errgroup.WithContext(ctx.Context)
	c := make(chan os.Signal, 1)
	// 终止的信号 服务要停止了
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

	log.L.Info("server starting",
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
	)

	return run(c, eg, groupCtx, app)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx context.Context, app *AppProvider) error {
	serv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Server.Http),
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动 http 服务
	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("server stopping")

			// 等待中断信号以优雅地关闭服务器
			timeCtx, timeCancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Info("server shutdown", zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.L.Info("server stopping", zap.Error(err))
		return err
	}

	log.L.Info("server stopped")
	return nil
}
