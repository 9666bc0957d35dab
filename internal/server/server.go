package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loopcard/loyalty-backend/internal/server/handlers"
	"github.com/loopcard/loyalty-backend/internal/server/middleware"
	"github.com/loopcard/loyalty-backend/pkg/logging"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	handler    *handlers.Handler
	jwtSecret  string
	logger     logging.Logger
}

func NewServer(handler *handlers.Handler, jwtSecret string, logger logging.Logger) *Server {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())

	// Configure CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Content-Length, Accept-Encoding, Origin, X-Requested-With, Stripe-Signature")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "false")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s := &Server{
		router:    router,
		handler:   handler,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")

	// Public routes
	api.GET("/health", s.handler.HealthCheck)
	auth := api.Group("/auth")
	auth.POST("/signup", s.handler.Signup)
	auth.POST("/login", s.handler.Login)

	// Stripe deliveries are authenticated by signature, not by session
	api.POST("/user/webhook", s.handler.StripeWebhook)

	user := api.Group("/user")
	user.Use(middleware.JWTAuth(s.jwtSecret, "", s.logger))
	user.POST("/request-mint", s.handler.RequestMint)
	user.POST("/checkout", s.handler.CreateCheckout)
	user.POST("/simulate-payment", s.handler.SimulatePayment)
	user.GET("/nft-status", s.handler.NFTStatus)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(s.jwtSecret, types.RoleAdmin, s.logger))
	admin.GET("/requests/:type", s.handler.ListPendingRequests)
	admin.POST("/requests/:id/approve", s.handler.ApproveRequest)
	admin.POST("/requests/:id/reject", s.handler.RejectRequest)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.logger.Infof("Starting server on port %s", port)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: s.router,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
