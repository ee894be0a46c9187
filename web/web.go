// Package web provides the HTTP server for the sweet-shop API: routing,
// middleware, and the store-maintenance schedule.
package web

import (
	"context"
	"io"
	"net"
	"net/http"

	"sweet-shop/config"
	"sweet-shop/database"
	"sweet-shop/logger"
	"sweet-shop/util/common"
	"sweet-shop/web/controller"
	"sweet-shop/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the sweet-shop web server with its controllers and the
// maintenance cron.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth  *controller.AuthController
	sweet *controller.SweetController
	stats *controller.StatsController
	reset *controller.ResetController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers, and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(middleware.CORSMiddleware(config.GetCORSOrigin()))
	engine.Use(middleware.RequestIdMiddleware())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	api := engine.Group("/api")
	{
		s.auth = controller.NewAuthController(api.Group("/auth"))
		s.sweet = controller.NewSweetController(api)
		s.stats = controller.NewStatsController(api)
		s.reset = controller.NewResetController(api)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules store maintenance: an hourly WAL checkpoint.
func (s *Server) startTask() {
	s.cron.AddFunc("@hourly", func() {
		if err := database.Checkpoint(); err != nil {
			logger.Warning("wal checkpoint failed:", err)
		}
	})
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and the cron schedule.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
