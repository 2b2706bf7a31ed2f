package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nflorant/diagnosis/internal/auditlog"
	"github.com/nflorant/diagnosis/internal/predict"
)

// Predictor is the core surface the transport layer calls into. Satisfied by
// *predict.Service.
type Predictor interface {
	Predict(ctx context.Context, symptoms []string) (*predict.Result, error)
	Symptoms() []string
}

// Recorder receives best-effort prediction audit entries and answers
// readiness pings. Satisfied by *auditlog.Store; nil disables auditing.
type Recorder interface {
	Record(ctx context.Context, e auditlog.Entry) error
	Ping(ctx context.Context) error
}

// Server is the HTTP front over the prediction core.
type Server struct {
	svc   Predictor
	audit Recorder
}

// New builds a server. audit may be nil.
func New(svc Predictor, audit Recorder) *Server {
	return &Server{svc: svc, audit: audit}
}

// Router assembles the gin engine with logging, panic recovery, a body size
// cap, and permissive CORS.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/", s.handleHealthz)
	router.GET("/healthz", s.handleHealthz)
	router.GET("/readyz", s.handleReadyz)
	router.GET("/symptoms", s.handleSymptoms)
	router.POST("/predict", s.handlePredict)

	return router
}

// Run serves until SIGINT/SIGTERM, then drains connections.
func (s *Server) Run(port string) error {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	log.Printf("server listening on :%s", port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		return err
	}
	return nil
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
